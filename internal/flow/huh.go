package flow

import (
	"context"
	"errors"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/opmodel/starter/internal/catalog"
	oerrors "github.com/opmodel/starter/internal/errors"
	"github.com/opmodel/starter/internal/output"
)

// HuhPrompter asks questions with charmbracelet/huh forms.
type HuhPrompter struct {
	// Accessible renders plain line-based prompts, used when stdin is not a terminal.
	Accessible bool

	in  io.Reader
	out io.Writer
}

// NewHuhPrompter returns a prompter that falls back to accessible mode
// when stdin is not interactive.
func NewHuhPrompter() *HuhPrompter {
	return &HuhPrompter{Accessible: !output.IsInteractive()}
}

// WithIO redirects prompt input and output.
func (p *HuhPrompter) WithIO(in io.Reader, out io.Writer) *HuhPrompter {
	p.in = in
	p.out = out
	return p
}

// Input asks a free-text question. An empty submission yields the default.
func (p *HuhPrompter) Input(ctx context.Context, ip InputPrompt) (string, error) {
	value := ip.Default
	field := huh.NewInput().
		Title(ip.Message).
		Placeholder(ip.Default).
		Value(&value)
	if ip.Describe != nil {
		field = field.DescriptionFunc(func() string { return ip.Describe(value) }, &value)
	}
	if ip.Validate != nil {
		field = field.Validate(func(s string) error {
			if s == "" {
				return nil
			}
			return ip.Validate(s)
		})
	}

	if err := p.run(ctx, field); err != nil {
		return "", err
	}
	if value == "" {
		value = ip.Default
	}
	return value, nil
}

// Confirm asks a yes/no question defaulting to no.
func (p *HuhPrompter) Confirm(ctx context.Context, message string) (bool, error) {
	var ok bool
	field := huh.NewConfirm().
		Title(message).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	if err := p.run(ctx, field); err != nil {
		return false, err
	}
	return ok, nil
}

// Select lists templates in catalog order with the first one preselected.
func (p *HuhPrompter) Select(ctx context.Context, message string, templates []catalog.Template) (*catalog.Template, error) {
	if len(templates) == 0 {
		return nil, nil
	}

	options := make([]huh.Option[*catalog.Template], len(templates))
	for i := range templates {
		options[i] = huh.NewOption(templates[i].Label(), &templates[i])
	}

	selected := &templates[0]
	field := huh.NewSelect[*catalog.Template]().
		Title(message).
		Options(options...).
		Value(&selected)

	if err := p.run(ctx, field); err != nil {
		return nil, err
	}
	return selected, nil
}

func (p *HuhPrompter) run(ctx context.Context, field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithAccessible(p.Accessible).
		WithShowHelp(false)
	if p.in != nil {
		form = form.WithInput(p.in)
	}
	if p.out != nil {
		form = form.WithOutput(p.out)
	}

	err := form.RunWithContext(ctx)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, huh.ErrUserAborted),
		errors.Is(err, huh.ErrTimeout),
		errors.Is(err, context.Canceled):
		return oerrors.Cancelled(CancelMessage)
	default:
		return err
	}
}
