package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"

	"github.com/SanteonNL/transparencydata/types"
)

func resourcesSubcommand() *cobra.Command {
	return &cobra.Command{
		Use:   "resources",
		Short: "List the resources and the parameters each one accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, r := range types.Resources() {
				params := slices.Clone(r.Parameters)
				slices.Sort(params)
				fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n  %s\n", r.Name, r.Endpoint, strings.Join(params, ", "))
			}
			return nil
		},
	}
}
