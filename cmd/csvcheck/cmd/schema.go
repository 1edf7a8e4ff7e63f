package cmd

import (
	"fmt"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/csvcheck/pkg/schema"
)

func newSchemaCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "schema FILE",
		Short: "Check a schema document and print its columns",
		Long: `Load a schema document (YAML, JSON or TOML), report configuration errors
and print the resolved column definitions in header order.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}
			log := root.newLogger(cmd, cfg)

			s, err := schema.Load(cmd.Context(), args[0])
			if err != nil {
				log.DebugContext(cmd.Context(), "schema rejected", "path", args[0], "error", err)
				return fmt.Errorf("load schema: %w", err)
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tNAME\tTYPE\tREQUIRED\tDUPLICATES\tFORMAT")
			for i, col := range s.Columns() {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
					i+1, col.Name, col.Type,
					strconv.FormatBool(col.Required),
					strconv.FormatBool(col.ValidateDuplicates),
					col.Format.String())
			}
			return tw.Flush()
		},
	}
}
