package scaffold

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"

	oerrors "github.com/opmodel/starter/internal/errors"
)

// DescriptorFile is the package descriptor whose name is rewritten.
const DescriptorFile = "package.json"

// descriptorPretty never folds arrays onto one line.
var descriptorPretty = &pretty.Options{
	Width:  0,
	Prefix: "",
	Indent: "  ",
}

// DescriptorChange records a rewritten descriptor.
type DescriptorChange struct {
	Path    string
	OldName string
	NewName string
	Before  []byte
	After   []byte
}

// RewriteName replaces the top-level "name" of the JSON document, keeping
// key order, and reformats it with two-space indentation and a single
// trailing newline.
func RewriteName(data []byte, name string) ([]byte, error) {
	if !gjson.ValidBytes(data) {
		return nil, oerrors.NewValidationError("descriptor is not valid JSON", DescriptorFile, "")
	}
	if !gjson.ParseBytes(data).IsObject() {
		return nil, oerrors.NewValidationError("descriptor is not a JSON object", DescriptorFile, "")
	}

	out, err := sjson.SetBytes(data, "name", name)
	if err != nil {
		return nil, fmt.Errorf("setting name: %w", err)
	}

	out = pretty.PrettyOptions(out, descriptorPretty)
	out = append(bytes.TrimRight(out, " \t\r\n"), '\n')
	return out, nil
}

// rewriteDescriptor updates dir/package.json when present. It returns nil
// without error when the template has no descriptor.
func rewriteDescriptor(dir, name string) (*DescriptorChange, error) {
	path := filepath.Join(dir, DescriptorFile)

	before, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", DescriptorFile, err)
	}

	after, err := RewriteName(before, name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat %s: %w", DescriptorFile, err)
	}
	if err := os.WriteFile(path, after, info.Mode().Perm()); err != nil {
		return nil, fmt.Errorf("writing %s: %w", DescriptorFile, err)
	}

	return &DescriptorChange{
		Path:    path,
		OldName: gjson.GetBytes(before, "name").String(),
		NewName: name,
		Before:  before,
		After:   after,
	}, nil
}
