package catalog

import (
	"context"
	"fmt"
	"os"

	"sigs.k8s.io/yaml"

	oerrors "github.com/opmodel/starter/internal/errors"
)

// File reads the catalog from a local YAML or JSON document, either a list of
// templates or an object with a "templates" list.
type File struct {
	Path string
}

type fileDocument struct {
	Templates []Template `json:"templates"`
}

// List reads and parses the catalog file.
func (f File) List(_ context.Context) ([]Template, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, oerrors.NewNotFoundError("catalog file does not exist", f.Path, "")
		}
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	templates, err := parseCatalog(data)
	if err != nil {
		return nil, oerrors.NewValidationError(fmt.Sprintf("parsing catalog file: %v", err), f.Path, "")
	}

	for i, t := range templates {
		if t.Name == "" || t.SourceURL == "" {
			return nil, oerrors.NewValidationError(
				fmt.Sprintf("template #%d needs both name and sourceURL", i+1),
				f.Path,
				"",
			)
		}
	}
	return templates, nil
}

func parseCatalog(data []byte) ([]Template, error) {
	var list []Template
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}

	var doc fileDocument
	if err := yaml.UnmarshalStrict(data, &doc); err != nil {
		return nil, err
	}
	return doc.Templates, nil
}
