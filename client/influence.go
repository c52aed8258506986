package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/gorilla/schema"
	"golang.org/x/exp/slices"
)

// DefaultCycle asks the aggregate endpoints for career totals.
const DefaultCycle = "-1"

// InfluenceExplorer wraps the entity and aggregate endpoints. Methods are
// grouped by the kind of entity they apply to.
type InfluenceExplorer struct {
	requester
	encoder *schema.Encoder

	Entities *Entities
	Pol      *Politician
	Indiv    *Individual
	Org      *Organization
}

// AggregateOptions selects the election cycle and result count. A zero Cycle
// means DefaultCycle; a zero Limit lets the server choose.
type AggregateOptions struct {
	Cycle string
	Limit int
}

type aggregateParams struct {
	Cycle string `schema:"cycle,omitempty"`
	Limit int    `schema:"limit,omitempty"`
}

func (o AggregateOptions) params(withLimit bool) aggregateParams {
	p := aggregateParams{Cycle: o.Cycle}
	if p.Cycle == "" {
		p.Cycle = DefaultCycle
	}
	if withLimit && o.Limit > 0 {
		p.Limit = o.Limit
	}
	return p
}

func NewInfluenceExplorer(cfg Config) (*InfluenceExplorer, error) {
	r, err := newRequester(cfg)
	if err != nil {
		return nil, err
	}
	ie := &InfluenceExplorer{requester: r, encoder: schema.NewEncoder()}
	ie.Entities = &Entities{api: ie}
	ie.Pol = &Politician{api: ie}
	ie.Indiv = &Individual{api: ie}
	ie.Org = &Organization{api: ie}
	return ie, nil
}

// get encodes params (a struct with schema tags, or nil) and fetches path.
func (ie *InfluenceExplorer) get(ctx context.Context, path string, params any) (any, error) {
	query := url.Values{}
	if params != nil {
		if err := ie.encoder.Encode(params, query); err != nil {
			return nil, fmt.Errorf("encode parameters for %s: %w", path, err)
		}
	}
	uri, err := ie.buildURL(path, query)
	if err != nil {
		return nil, err
	}
	return ie.getJSON(ctx, path, uri)
}

type aggregateRoute struct {
	path  string
	limit bool
}

var aggregateRoutes = map[string]map[string]aggregateRoute{
	"pol": {
		"contributors":               {"aggregates/pol/%s/contributors.json", true},
		"sectors":                    {"aggregates/pol/%s/contributors/sectors.json", true},
		"industries":                 {"aggregates/pol/%s/contributors/industries.json", true},
		"industries_unknown":         {"aggregates/pol/%s/contributors/industries_unknown.json", false},
		"local_breakdown":            {"aggregates/pol/%s/contributors/local_breakdown.json", false},
		"contributor_type_breakdown": {"aggregates/pol/%s/contributors/type_breakdown.json", false},
		"sparkline":                  {"aggregates/pol/%s/sparkline.json", false},
		"earmarks":                   {"aggregates/pol/%s/earmarks.json", true},
		"earmarks_local_breakdown":   {"aggregates/pol/%s/earmarks/local_breakdown.json", false},
		"fec_summary":                {"aggregates/pol/%s/fec_summary.json", false},
		"fec_timeline":               {"aggregates/pol/%s/fec_timeline.json", false},
	},
	"indiv": {
		"org_recipients":  {"aggregates/indiv/%s/recipient_orgs.json", true},
		"pol_recipients":  {"aggregates/indiv/%s/recipient_pols.json", true},
		"party_breakdown": {"aggregates/indiv/%s/recipients/party_breakdown.json", false},
		"registrants":     {"aggregates/indiv/%s/registrants.json", true},
		"issues":          {"aggregates/indiv/%s/issues.json", true},
		"clients":         {"aggregates/indiv/%s/clients.json", true},
		"sparkline":       {"aggregates/indiv/%s/sparkline.json", false},
	},
	"org": {
		"recipients":            {"aggregates/org/%s/recipients.json", true},
		"pac_recipients":        {"aggregates/org/%s/recipient_pacs.json", true},
		"party_breakdown":       {"aggregates/org/%s/recipients/party_breakdown.json", false},
		"level_breakdown":       {"aggregates/org/%s/recipients/level_breakdown.json", false},
		"registrants":           {"aggregates/org/%s/registrants.json", true},
		"issues":                {"aggregates/org/%s/issues.json", true},
		"bills":                 {"aggregates/org/%s/bills.json", true},
		"lobbyists":             {"aggregates/org/%s/lobbyists.json", true},
		"registrant_clients":    {"aggregates/org/%s/registrant/clients.json", true},
		"registrant_issues":     {"aggregates/org/%s/registrant/issues.json", true},
		"registrant_bills":      {"aggregates/org/%s/registrant/bills.json", true},
		"registrant_lobbyists":  {"aggregates/org/%s/registrant/lobbyists.json", true},
		"industry_orgs":         {"aggregates/industry/%s/orgs.json", true},
		"sparkline":             {"aggregates/org/%s/sparkline.json", false},
		"sparkline_by_party":    {"aggregates/org/%s/sparkline_by_party.json", false},
		"fed_spending":          {"aggregates/org/%s/fed_spending.json", true},
		"earmarks":              {"aggregates/org/%s/earmarks.json", true},
		"contractor_misconduct": {"aggregates/org/%s/contractor_misconduct.json", true},
		"regulations_text":      {"aggregates/org/%s/regulations_text.json", true},
		"regulations_submitter": {"aggregates/org/%s/regulations_submitter.json", true},
		"epa_echo":              {"aggregates/org/%s/epa_enforcement_actions.json", true},
		"faca":                  {"aggregates/org/%s/faca.json", true},
	},
}

// AggregateKinds returns the entity kinds with aggregate endpoints.
func AggregateKinds() []string {
	kinds := make([]string, 0, len(aggregateRoutes))
	for k := range aggregateRoutes {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// AggregateMethods returns the aggregate names available for kind.
func AggregateMethods(kind string) []string {
	routes := aggregateRoutes[kind]
	methods := make([]string, 0, len(routes))
	for m := range routes {
		methods = append(methods, m)
	}
	slices.Sort(methods)
	return methods
}

// Aggregate fetches the named aggregate ("pol", "contributors", ...) for an
// entity.
func (ie *InfluenceExplorer) Aggregate(ctx context.Context, kind, method, entityID string, opts AggregateOptions) (any, error) {
	route, ok := aggregateRoutes[kind][method]
	if !ok {
		return nil, fmt.Errorf("unknown aggregate %s %s", kind, method)
	}
	if entityID == "" {
		return nil, fmt.Errorf("aggregate %s %s: entity id is required", kind, method)
	}
	path := fmt.Sprintf(route.path, url.PathEscape(entityID))
	return ie.get(ctx, path, opts.params(route.limit))
}
