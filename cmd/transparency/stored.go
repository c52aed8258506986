package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SanteonNL/transparencydata/types"
)

func storedSubcommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "stored <resource>",
		Short: "Print the records saved by query --store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, ok := types.LookupResource(args[0]); !ok {
				return fmt.Errorf("unknown resource %q", args[0])
			}
			cfg, err := a.config()
			if err != nil {
				return err
			}
			s, err := a.openStore(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			records, err := s.LoadRecords(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), records)
		},
	}
}
