package flow

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opmodel/starter/internal/catalog"
	oerrors "github.com/opmodel/starter/internal/errors"
)

// fakePrompter replays scripted answers and records every question.
type fakePrompter struct {
	inputs   []string
	confirms []bool
	pick     string
	abortOn  string

	asked   []string
	prompts []InputPrompt
}

func (f *fakePrompter) Input(_ context.Context, p InputPrompt) (string, error) {
	f.asked = append(f.asked, p.Message)
	f.prompts = append(f.prompts, p)
	if f.abortOn == p.Message {
		return "", oerrors.Cancelled(CancelMessage)
	}
	if len(f.inputs) == 0 {
		return p.Default, nil
	}
	v := f.inputs[0]
	f.inputs = f.inputs[1:]
	return v, nil
}

func (f *fakePrompter) Confirm(_ context.Context, message string) (bool, error) {
	f.asked = append(f.asked, message)
	if len(f.confirms) == 0 {
		return false, nil
	}
	v := f.confirms[0]
	f.confirms = f.confirms[1:]
	return v, nil
}

func (f *fakePrompter) Select(_ context.Context, message string, templates []catalog.Template) (*catalog.Template, error) {
	f.asked = append(f.asked, message)
	if f.abortOn == MsgSelectTemplate {
		return nil, oerrors.Cancelled(CancelMessage)
	}
	if f.pick == "" {
		return &templates[0], nil
	}
	return catalog.Find(templates, f.pick), nil
}

func testTemplates() []catalog.Template {
	return []catalog.Template{
		{Name: "t1", Description: "first", SourceURL: "https://example.com/t1.git"},
		{Name: "t2", SourceURL: "https://example.com/t2.git"},
	}
}

func TestRun_ArgAndFlagSkipPrompts(t *testing.T) {
	p := &fakePrompter{}
	f := &Flow{Prompter: p, Cwd: t.TempDir(), Templates: testTemplates()}

	cfg, err := f.Run(context.Background(), Input{ArgDir: "demo/", TemplateFlag: "t1"})
	require.NoError(t, err)

	assert.Empty(t, p.asked)
	assert.Equal(t, "demo", cfg.TargetDir)
	assert.Equal(t, "demo", cfg.ProjectName)
	assert.Empty(t, cfg.PackageName)
	require.NotNil(t, cfg.Template)
	assert.Equal(t, "t1", cfg.Template.Name)
	assert.Nil(t, cfg.Overwrite)
	assert.Equal(t, filepath.Join(f.Cwd, "demo"), cfg.Dir())
}

func TestRun_AsksProjectNameWithoutArg(t *testing.T) {
	p := &fakePrompter{inputs: []string{"  web-app/ "}}
	f := &Flow{Prompter: p, Cwd: t.TempDir(), Templates: testTemplates()}

	cfg, err := f.Run(context.Background(), Input{TemplateFlag: "t2"})
	require.NoError(t, err)

	assert.Equal(t, []string{MsgProjectName}, p.asked)
	assert.Equal(t, "web-app", cfg.TargetDir)
}

func TestRun_ProjectNameDescribesTargetAsTyped(t *testing.T) {
	p := &fakePrompter{inputs: []string{"web"}}
	f := &Flow{Prompter: p, Cwd: t.TempDir(), Templates: testTemplates()}

	_, err := f.Run(context.Background(), Input{TemplateFlag: "t1"})
	require.NoError(t, err)

	require.Len(t, p.prompts, 1)
	describe := p.prompts[0].Describe
	require.NotNil(t, describe)
	assert.Equal(t, "Scaffolds into "+filepath.Join(f.Cwd, "my-project"), describe(""))
	assert.Equal(t, "Scaffolds into "+filepath.Join(f.Cwd, "we"), describe("we"))
	assert.Equal(t, "Scaffolds into "+filepath.Join(f.Cwd, "web-app"), describe("  web-app// "))
	assert.Equal(t, "Scaffolds into "+f.Cwd, describe("."))
}

func TestRun_EmptyProjectNameFallsBackToDefault(t *testing.T) {
	p := &fakePrompter{inputs: []string{"   "}}
	f := &Flow{Prompter: p, Cwd: t.TempDir(), Templates: testTemplates()}

	cfg, err := f.Run(context.Background(), Input{TemplateFlag: "t1"})
	require.NoError(t, err)
	assert.Equal(t, "my-project", cfg.TargetDir)
}

func TestRun_InvalidProjectNameAsksPackageName(t *testing.T) {
	var gotDefault string
	p := &recordingPrompter{fakePrompter: fakePrompter{inputs: []string{"demo-app"}}, onInput: func(ip InputPrompt) {
		gotDefault = ip.Default
		require.NotNil(t, ip.Validate)
		assert.EqualError(t, ip.Validate("Bad Name"), MsgInvalidPackage)
		assert.NoError(t, ip.Validate("demo-app"))
	}}
	f := &Flow{Prompter: p, Cwd: t.TempDir(), Templates: testTemplates()}

	cfg, err := f.Run(context.Background(), Input{ArgDir: "Demo App", TemplateFlag: "t1"})
	require.NoError(t, err)

	assert.Equal(t, []string{MsgPackageName}, p.asked)
	assert.Equal(t, "demo-app", gotDefault)
	assert.Equal(t, "Demo App", cfg.ProjectName)
	assert.Equal(t, "demo-app", cfg.PackageName)
}

func TestRun_InvalidPackageAnswerIsValidationError(t *testing.T) {
	p := &fakePrompter{inputs: []string{"Still Bad"}}
	f := &Flow{Prompter: p, Cwd: t.TempDir(), Templates: testTemplates()}

	_, err := f.Run(context.Background(), Input{ArgDir: "Demo App", TemplateFlag: "t1"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, oerrors.ErrValidation))
}

func TestRun_UnknownTemplateFlagEchoedInSelect(t *testing.T) {
	p := &fakePrompter{pick: "t2"}
	f := &Flow{Prompter: p, Cwd: t.TempDir(), Templates: testTemplates()}

	cfg, err := f.Run(context.Background(), Input{ArgDir: "demo", TemplateFlag: "T1"})
	require.NoError(t, err)

	assert.Equal(t, []string{`"T1" isn't a valid template. Please choose from below:`}, p.asked)
	assert.Equal(t, "t2", cfg.Template.Name)
}

func TestRun_NoFlagUsesPlainSelectMessage(t *testing.T) {
	p := &fakePrompter{}
	f := &Flow{Prompter: p, Cwd: t.TempDir(), Templates: testTemplates()}

	cfg, err := f.Run(context.Background(), Input{ArgDir: "demo"})
	require.NoError(t, err)
	assert.Equal(t, []string{MsgSelectTemplate}, p.asked)
	assert.Equal(t, "t1", cfg.Template.Name)
}

func TestRun_EmptyCatalogResolvesWithoutTemplate(t *testing.T) {
	p := &fakePrompter{}
	f := &Flow{Prompter: p, Cwd: t.TempDir()}

	cfg, err := f.Run(context.Background(), Input{ArgDir: "demo", TemplateFlag: "t1"})
	require.NoError(t, err)
	assert.Empty(t, p.asked)
	assert.Nil(t, cfg.Template)
}

func TestRun_NonEmptyTarget(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cwd, "demo"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "demo", "keep.txt"), []byte("x"), 0o644))

	t.Run("declined overwrite cancels", func(t *testing.T) {
		p := &fakePrompter{confirms: []bool{false}}
		f := &Flow{Prompter: p, Cwd: cwd, Templates: testTemplates()}

		cfg, err := f.Run(context.Background(), Input{ArgDir: "demo", TemplateFlag: "t1"})
		require.Error(t, err)
		assert.Nil(t, cfg)
		assert.True(t, errors.Is(err, oerrors.ErrCancelled))
		assert.Equal(t, CancelMessage, err.Error())
		assert.Equal(t, []string{`Target directory "demo" is not empty. Remove existing files and continue?`}, p.asked)
	})

	t.Run("accepted overwrite continues", func(t *testing.T) {
		p := &fakePrompter{confirms: []bool{true}}
		f := &Flow{Prompter: p, Cwd: cwd, Templates: testTemplates()}

		cfg, err := f.Run(context.Background(), Input{ArgDir: "demo", TemplateFlag: "t1"})
		require.NoError(t, err)
		require.NotNil(t, cfg.Overwrite)
		assert.True(t, *cfg.Overwrite)
	})
}

func TestRun_FileAtTargetAsksOverwrite(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "demo"), []byte("x"), 0o644))

	p := &fakePrompter{confirms: []bool{true}}
	f := &Flow{Prompter: p, Cwd: cwd, Templates: testTemplates()}

	cfg, err := f.Run(context.Background(), Input{ArgDir: "demo", TemplateFlag: "t1"})
	require.NoError(t, err)
	assert.Equal(t, []string{`Target directory "demo" is not empty. Remove existing files and continue?`}, p.asked)
	require.NotNil(t, cfg.Overwrite)
	assert.True(t, *cfg.Overwrite)
}

func TestRun_CurrentDirectory(t *testing.T) {
	cwd := filepath.Join(t.TempDir(), "my-app")
	require.NoError(t, os.MkdirAll(cwd, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cwd, "README.md"), []byte("x"), 0o644))

	p := &fakePrompter{confirms: []bool{true}}
	f := &Flow{Prompter: p, Cwd: cwd, Templates: testTemplates()}

	cfg, err := f.Run(context.Background(), Input{ArgDir: ".", TemplateFlag: "t1"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Current directory is not empty. Remove existing files and continue?"}, p.asked)
	assert.Equal(t, "my-app", cfg.ProjectName)
	assert.Equal(t, cwd, cfg.Dir())
}

func TestRun_GitOnlyTargetSkipsOverwrite(t *testing.T) {
	cwd := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(cwd, "demo", ".git"), 0o755))

	p := &fakePrompter{}
	f := &Flow{Prompter: p, Cwd: cwd, Templates: testTemplates()}

	_, err := f.Run(context.Background(), Input{ArgDir: "demo", TemplateFlag: "t1"})
	require.NoError(t, err)
	assert.Empty(t, p.asked)
}

func TestRun_AbortPropagatesCancellation(t *testing.T) {
	p := &fakePrompter{abortOn: MsgSelectTemplate}
	f := &Flow{Prompter: p, Cwd: t.TempDir(), Templates: testTemplates()}

	_, err := f.Run(context.Background(), Input{ArgDir: "demo"})
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))
}

func TestRun_ProbeErrorIsReturned(t *testing.T) {
	boom := errors.New("boom")
	f := &Flow{
		Prompter:       &fakePrompter{},
		Cwd:            t.TempDir(),
		NeedsOverwrite: func(string) (bool, error) { return false, boom },
	}

	_, err := f.Run(context.Background(), Input{ArgDir: "demo"})
	assert.ErrorIs(t, err, boom)
}

func TestRun_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := &Flow{Prompter: &fakePrompter{}, Cwd: t.TempDir(), Templates: testTemplates()}
	_, err := f.Run(ctx, Input{ArgDir: "demo"})
	assert.True(t, errors.Is(err, oerrors.ErrCancelled))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, `Target directory "a/b" is not empty. Remove existing files and continue?`, OverwriteMessage("a/b"))
	assert.Equal(t, MsgSelectTemplate, TemplateMessage(""))
	assert.Equal(t, `"x" isn't a valid template. Please choose from below:`, TemplateMessage("x"))
}

type recordingPrompter struct {
	fakePrompter
	onInput func(InputPrompt)
}

func (r *recordingPrompter) Input(ctx context.Context, p InputPrompt) (string, error) {
	if r.onInput != nil {
		r.onInput(p)
	}
	return r.fakePrompter.Input(ctx, p)
}

func TestHuhPrompter_EmptySelect(t *testing.T) {
	p := (&HuhPrompter{Accessible: true}).WithIO(nil, nil)
	tmpl, err := p.Select(context.Background(), MsgSelectTemplate, nil)
	require.NoError(t, err)
	assert.Nil(t, tmpl)
}
