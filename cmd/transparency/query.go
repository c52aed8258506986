package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/SanteonNL/transparencydata/body"
	"github.com/SanteonNL/transparencydata/client"
	"github.com/SanteonNL/transparencydata/store"
	"github.com/SanteonNL/transparencydata/types"
	"github.com/SanteonNL/transparencydata/util"
)

// queryFile is the YAML form of a query:
//
//	resource: contributions
//	per_page: 100
//	filters:
//	  contributor_state: NY
//	  cycle__in: [2008, 2010]
//	  date__between: [2008-01-01, 2008-12-31]
type queryFile struct {
	Resource string         `yaml:"resource"`
	Page     int            `yaml:"page"`
	PerPage  int            `yaml:"per_page"`
	Filters  map[string]any `yaml:"filters"`
}

type queryOptions struct {
	file    string
	page    int
	perPage int
	debug   bool
	store   bool
}

func querySubcommand(a *app) *cobra.Command {
	opts := &queryOptions{}
	cmd := &cobra.Command{
		Use:   "query [resource] [name[__op]=value ...]",
		Short: "Query a Transparency Data resource",
		Long: "Query a Transparency Data resource. Operators are appended to the " +
			"parameter name: __in, __gt, __lt and __between. Values of __in and " +
			"__between are separated by commas.",
		Example: "  transparency query contributions contributor_state=NY amount__gt=1000\n" +
			"  transparency query contracts --file queries/contracts.yaml --per-page 50",
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := buildQuery(cmd, opts, args)
			if err != nil {
				return err
			}
			return a.runQuery(cmd, opts, q)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.file, "file", "f", "", "YAML file with the resource, paging and filters")
	flags.IntVar(&opts.page, "page", 0, "Page to request")
	flags.IntVar(&opts.perPage, "per-page", 0, "Records per page")
	flags.BoolVar(&opts.debug, "debug", false, "Print the request URL instead of sending it")
	flags.BoolVar(&opts.store, "store", false, "Save the returned records to TD_DATABASE_URL")
	return cmd
}

type query struct {
	resource types.ResourceSpec
	filters  []types.Filter
	page     types.Page
}

// buildQuery merges the query file, the positional arguments and the flags,
// in that order of precedence from lowest to highest.
func buildQuery(cmd *cobra.Command, opts *queryOptions, args []string) (query, error) {
	var qf queryFile
	if opts.file != "" {
		var err error
		if qf, err = readQueryFile(opts.file); err != nil {
			return query{}, err
		}
	}

	name := qf.Resource
	if len(args) > 0 && !strings.Contains(args[0], "=") {
		name, args = args[0], args[1:]
	}
	if name == "" {
		return query{}, fmt.Errorf("no resource given")
	}
	resource, ok := types.LookupResource(name)
	if !ok {
		return query{}, fmt.Errorf("unknown resource %q", name)
	}

	filters := types.FiltersFromMap(qf.Filters)
	argFilters, err := parseFilterArgs(args)
	if err != nil {
		return query{}, err
	}
	filters = append(filters, argFilters...)

	page := types.Page{Page: qf.Page, PerPage: qf.PerPage}
	if cmd.Flags().Changed("page") {
		page.Page = opts.page
	}
	if cmd.Flags().Changed("per-page") {
		page.PerPage = opts.perPage
	}
	return query{resource: resource, filters: filters, page: page}, nil
}

func readQueryFile(path string) (queryFile, error) {
	abs, err := util.AbsolutePath(path)
	if err != nil {
		return queryFile{}, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return queryFile{}, fmt.Errorf("failed to read query file: %w", err)
	}
	var qf queryFile
	if err := yaml.Unmarshal(data, &qf); err != nil {
		return queryFile{}, fmt.Errorf("failed to parse query file %s: %w", path, err)
	}
	return qf, nil
}

// parseFilterArgs turns name[__op]=value arguments into filters.
func parseFilterArgs(args []string) ([]types.Filter, error) {
	filters := make([]types.Filter, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid filter %q, expected name=value", arg)
		}
		name, op := types.SplitParamName(key)
		f := types.Filter{Name: name, Op: op, Value: value}
		if op == types.OpIn || op == types.OpBetween {
			parts := strings.Split(value, ",")
			values := make([]any, len(parts))
			for i, p := range parts {
				values[i] = strings.TrimSpace(p)
			}
			f.Value = values
		}
		filters = append(filters, f)
	}
	return filters, nil
}

func (a *app) runQuery(cmd *cobra.Command, opts *queryOptions, q query) error {
	cfg, err := a.config()
	if err != nil {
		return err
	}
	ccfg := cfg.clientConfig(a.log)
	ccfg.Debug = ccfg.Debug || opts.debug

	rc, err := client.NewResourceClient(q.resource, ccfg)
	if err != nil {
		return err
	}
	a.log.Debug().Str("resource", q.resource.Name).Int("filters", len(q.filters)).Msg("Running query")

	ctx := cmd.Context()
	if ccfg.Debug || !opts.store {
		resp, err := rc.Execute(ctx, q.filters, q.page)
		if err != nil {
			return err
		}
		if ccfg.Debug {
			_, err = fmt.Fprintln(cmd.OutOrStdout(), resp.URL)
			return err
		}
		return writeJSON(cmd.OutOrStdout(), resp.Data)
	}

	records, err := rc.Records(ctx, q.filters, q.page)
	if err != nil {
		return err
	}
	n, err := a.saveRecords(ctx, cfg, q.resource.Name, records)
	if err != nil {
		return err
	}
	a.log.Info().Str("resource", q.resource.Name).Int("records", n).Msg("Stored records")
	return writeJSON(cmd.OutOrStdout(), records)
}

func (a *app) openStore(ctx context.Context, cfg config) (*store.Store, error) {
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("TD_DATABASE_URL is not set")
	}
	return store.Open(ctx, cfg.DatabaseURL, a.log.With().Str("component", "store").Logger())
}

func (a *app) saveRecords(ctx context.Context, cfg config, resource string, records []body.Record) (int, error) {
	s, err := a.openStore(ctx, cfg)
	if err != nil {
		return 0, err
	}
	defer s.Close()
	return s.SaveRecords(ctx, resource, records)
}
