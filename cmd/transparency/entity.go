package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/SanteonNL/transparencydata/client"
)

func (a *app) explorer() (*client.InfluenceExplorer, error) {
	cfg, err := a.config()
	if err != nil {
		return nil, err
	}
	return client.NewInfluenceExplorer(cfg.clientConfig(a.log))
}

// entityRun adapts an Entities call to a cobra RunE that prints its result.
func (a *app) entityRun(call func(ctx context.Context, e *client.Entities, args []string) (any, error)) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ie, err := a.explorer()
		if err != nil {
			return err
		}
		data, err := call(cmd.Context(), ie.Entities, args)
		if err != nil {
			return err
		}
		return writeJSON(cmd.OutOrStdout(), data)
	}
}

func entitySubcommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entity",
		Short: "Influence Explorer entity lookups",
	}

	opts := client.AggregateOptions{}

	cmd.AddCommand(&cobra.Command{
		Use:   "search <query>",
		Short: "Search entities by name",
		Args:  cobra.ExactArgs(1),
		RunE: a.entityRun(func(ctx context.Context, e *client.Entities, args []string) (any, error) {
			return e.Search(ctx, args[0])
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "metadata <entity-id>",
		Short: "Show an entity with the year ranges of its data",
		Args:  cobra.ExactArgs(1),
		RunE: a.entityRun(func(ctx context.Context, e *client.Entities, args []string) (any, error) {
			return e.Metadata(ctx, args[0])
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "lookup <namespace> <id>",
		Short: "Find entities by an external identifier",
		Args:  cobra.ExactArgs(2),
		RunE: a.entityRun(func(ctx context.Context, e *client.Entities, args []string) (any, error) {
			return e.IDLookup(ctx, args[0], args[1])
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "count [type]",
		Short: "Count entities, optionally of one type",
		Args:  cobra.MaximumNArgs(1),
		RunE: a.entityRun(func(ctx context.Context, e *client.Entities, args []string) (any, error) {
			return e.Count(ctx, optionalArg(args, 0))
		}),
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "list <start> <end> [type]",
		Short: "List a slice of entities",
		Args:  cobra.RangeArgs(2, 3),
		RunE: a.entityRun(func(ctx context.Context, e *client.Entities, args []string) (any, error) {
			start, err := strconv.Atoi(args[0])
			if err != nil {
				return nil, fmt.Errorf("start: %w", err)
			}
			end, err := strconv.Atoi(args[1])
			if err != nil {
				return nil, fmt.Errorf("end: %w", err)
			}
			return e.List(ctx, start, end, optionalArg(args, 2))
		}),
	})

	top := &cobra.Command{
		Use:       "top <pols|orgs|indivs|industries>",
		Short:     "Top entities by total amount",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"pols", "orgs", "indivs", "industries"},
		RunE: a.entityRun(func(ctx context.Context, e *client.Entities, args []string) (any, error) {
			switch args[0] {
			case "pols":
				return e.TopPoliticians(ctx, opts)
			case "orgs":
				return e.TopOrganizations(ctx, opts)
			case "indivs":
				return e.TopIndividuals(ctx, opts)
			default:
				return e.TopIndustries(ctx, opts)
			}
		}),
	}
	aggregateFlags(top, &opts)
	cmd.AddCommand(top)

	return cmd
}

func optionalArg(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}
	return ""
}
