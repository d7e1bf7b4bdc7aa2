package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	"github.com/opmodel/starter/internal/catalog"
	"github.com/opmodel/starter/internal/cmdtypes"
	"github.com/opmodel/starter/internal/cmdutil"
	"github.com/opmodel/starter/internal/output"
)

// NewTemplatesCmd creates the templates command.
func NewTemplatesCmd(gc *cmdtypes.GlobalConfig) *cobra.Command {
	var of cmdutil.OutputFlags

	c := &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		Long: `List the templates in the catalog, in selection order.

Examples:
  # Table
  starter templates

  # Machine-readable
  starter templates -o json`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runTemplates(c, gc, &of)
		},
	}

	of.AddTo(c)
	return c
}

func runTemplates(c *cobra.Command, gc *cmdtypes.GlobalConfig, of *cmdutil.OutputFlags) error {
	format, err := of.Parse()
	if err != nil {
		return err
	}

	cat, err := cmdutil.Catalog(gc)
	if err != nil {
		return err
	}

	templates, err := cmdutil.FetchTemplates(c.Context(), cat)
	if err != nil {
		return handleCancel(c, err)
	}
	if templates == nil {
		templates = []catalog.Template{}
	}

	w := c.OutOrStdout()
	switch format {
	case output.FormatJSON:
		data, err := json.MarshalIndent(templates, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling templates: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case output.FormatYAML:
		data, err := yaml.Marshal(templates)
		if err != nil {
			return fmt.Errorf("marshaling templates: %w", err)
		}
		fmt.Fprint(w, string(data))
	default:
		if len(templates) == 0 {
			fmt.Fprintln(w, "No templates found")
			return nil
		}
		tbl := output.NewTable("NAME", "DESCRIPTION", "SOURCE")
		for _, t := range templates {
			tbl.Row(t.Name, t.Description, t.SourceURL)
		}
		fmt.Fprintln(w, tbl.String())
	}
	return nil
}
