// Package catalog lists the template repositories a project can be scaffolded from.
package catalog

import (
	"context"
)

// Template is one clonable project skeleton.
type Template struct {
	// Name is the repository name, unique within the catalog.
	Name string `json:"name"`

	// Description is empty when the repository has none.
	Description string `json:"description,omitempty"`

	// SourceURL is the clone URL.
	SourceURL string `json:"sourceURL"`

	// HTMLURL is the repository's web page.
	HTMLURL string `json:"htmlURL,omitempty"`
}

// Label returns the text shown for the template in a selection list.
func (t Template) Label() string {
	if t.Description == "" {
		return t.Name
	}
	return t.Name + " - " + t.Description
}

// Catalog lists available templates in display order.
type Catalog interface {
	List(ctx context.Context) ([]Template, error)
}

// Find returns the template whose name equals name exactly, or nil.
func Find(templates []Template, name string) *Template {
	if name == "" {
		return nil
	}
	for i := range templates {
		if templates[i].Name == name {
			return &templates[i]
		}
	}
	return nil
}

// Names returns the template names in catalog order.
func Names(templates []Template) []string {
	names := make([]string, len(templates))
	for i, t := range templates {
		names[i] = t.Name
	}
	return names
}

// Static is an in-memory catalog.
type Static []Template

// List returns a copy of the static templates.
func (s Static) List(_ context.Context) ([]Template, error) {
	return append([]Template(nil), s...), nil
}
