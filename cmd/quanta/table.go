package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/aretw0/quanta/pkg/units"
	"github.com/spf13/cobra"
)

var (
	tableJSON bool
)

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "List the unit constants",
	Long:  `List every unit constant with its symbol, dimension and size in base units.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		table := units.Table()

		if tableJSON {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(table)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "NAME\tSYMBOL\tDIMENSION\tBASE UNITS")
		for _, e := range table {
			fmt.Fprintf(w, "%s\t%s\t%s\t%g\n", e.Name, e.Symbol, e.Dimension, e.Value)
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(tableCmd)
	tableCmd.Flags().BoolVar(&tableJSON, "json", false, "Output in JSON format")
}
