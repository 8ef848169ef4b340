package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "verdearido",
		Short: "Farm management API and calculators for forage palm producers",
		Long: `verdearido serves the farm management JSON API and runs the planting,
diet and grazing calculators from the command line.

Commands:
  serve     - Run the HTTP API
  calc      - Run a calculator on bare figures
  partners  - List the partner directory`,
		SilenceUsage: true,
	}
	root.AddCommand(newServeCmd(), newCalcCmd(), newPartnersCmd())
	return root
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
