package main

import (
	"github.com/spf13/cobra"

	"github.com/vbonduro/verdearido/internal/partners"
)

func newPartnersCmd() *cobra.Command {
	var (
		services []string
		region   string
		byRegion bool
	)
	cmd := &cobra.Command{
		Use:   "partners",
		Short: "List the partner directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			dir, err := partners.Load()
			if err != nil {
				return err
			}
			if byRegion {
				return printJSON(cmd.OutOrStdout(), dir.ByRegion())
			}
			return printJSON(cmd.OutOrStdout(), dir.Filter(services, region))
		},
	}
	cmd.Flags().StringSliceVar(&services, "service", nil, "keep partners offering any of these services")
	cmd.Flags().StringVar(&region, "region", "", "keep partners in this region")
	cmd.Flags().BoolVar(&byRegion, "by-region", false, "group the whole directory by region")
	return cmd
}
