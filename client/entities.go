package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/SanteonNL/transparencydata/body"
	"github.com/SanteonNL/transparencydata/types"
)

// DefaultTopN is used by the top-n lists when no limit is given.
const DefaultTopN = 10

// Entities searches, lists and ranks entities.
type Entities struct {
	api *InfluenceExplorer
}

type searchParams struct {
	Search string `schema:"search"`
}

type idLookupParams struct {
	Namespace string `schema:"namespace"`
	ID        string `schema:"id"`
}

type countParams struct {
	Count int    `schema:"count"`
	Type  string `schema:"type,omitempty"`
}

type listParams struct {
	Start int    `schema:"start"`
	End   int    `schema:"end"`
	Type  string `schema:"type,omitempty"`
}

// Search returns entities whose names contain every space separated term.
// Non-ASCII characters are dropped from the query.
func (e *Entities) Search(ctx context.Context, query string) (any, error) {
	return e.api.get(ctx, "entities.json", searchParams{Search: asciiOnly(query)})
}

// Metadata returns the entity document with the year ranges of its data.
func (e *Entities) Metadata(ctx context.Context, entityID string) (*body.EntityMetadata, error) {
	path := fmt.Sprintf("entities/%s.json", url.PathEscape(entityID))
	data, err := e.api.get(ctx, path, nil)
	if err != nil {
		return nil, err
	}
	md, err := body.NewEntityMetadata(data)
	if err != nil {
		return nil, &types.InvalidResponseError{Endpoint: path, Err: err}
	}
	return md, nil
}

// IDLookup maps a third party ID to an entity ID. Namespaces include
// urn:crp:individual, urn:crp:organization, urn:crp:recipient,
// urn:crp:industry, urn:crp:subindustry, urn:nimsp:subindustry,
// urn:nimsp:organization, urn:nimsp:recipient and
// urn:sunlight:lobbyist_registration_tracker_url.
func (e *Entities) IDLookup(ctx context.Context, namespace, id string) (any, error) {
	return e.api.get(ctx, "entities/id_lookup.json", idLookupParams{Namespace: namespace, ID: id})
}

// Count returns the number of entities, optionally of one type.
func (e *Entities) Count(ctx context.Context, entityType string) (int, error) {
	const path = "entities/list.json"
	data, err := e.api.get(ctx, path, countParams{Count: 1, Type: entityType})
	if err != nil {
		return 0, err
	}
	m, ok := data.(map[string]any)
	if !ok {
		return 0, &types.InvalidResponseError{Endpoint: path, Err: fmt.Errorf("expected a JSON object, got %T", data)}
	}
	switch v := m["count"].(type) {
	case float64:
		return int(v), nil
	case string:
		n, err := strconv.Atoi(v)
		if err != nil {
			return 0, &types.InvalidResponseError{Endpoint: path, Err: fmt.Errorf("count: %w", err)}
		}
		return n, nil
	default:
		return 0, &types.InvalidResponseError{Endpoint: path, Err: fmt.Errorf("missing count")}
	}
}

// List returns the entities in [start, end), optionally of one type.
func (e *Entities) List(ctx context.Context, start, end int, entityType string) (any, error) {
	return e.api.get(ctx, "entities/list.json", listParams{Start: start, End: end, Type: entityType})
}

// TopIndividuals ranks individuals by amount contributed.
func (e *Entities) TopIndividuals(ctx context.Context, opts AggregateOptions) (any, error) {
	return e.top(ctx, "indivs", opts)
}

// TopOrganizations ranks organizations by amount contributed.
func (e *Entities) TopOrganizations(ctx context.Context, opts AggregateOptions) (any, error) {
	return e.top(ctx, "orgs", opts)
}

// TopPoliticians ranks politicians by amount received.
func (e *Entities) TopPoliticians(ctx context.Context, opts AggregateOptions) (any, error) {
	return e.top(ctx, "pols", opts)
}

// TopIndustries ranks industries by amount contributed.
func (e *Entities) TopIndustries(ctx context.Context, opts AggregateOptions) (any, error) {
	return e.top(ctx, "industries", opts)
}

func (e *Entities) top(ctx context.Context, kind string, opts AggregateOptions) (any, error) {
	n := opts.Limit
	if n <= 0 {
		n = DefaultTopN
	}
	path := fmt.Sprintf("aggregates/%s/top_%d.json", kind, n)
	return e.api.get(ctx, path, opts.params(false))
}

// CandidatesByLocation is not maintained upstream.
func (e *Entities) CandidatesByLocation(ctx context.Context, location string, opts AggregateOptions) (any, error) {
	path := fmt.Sprintf("entities/race/%s.json", url.PathEscape(location))
	return e.api.get(ctx, path, opts.params(false))
}

// ElectionDistricts is not maintained upstream.
func (e *Entities) ElectionDistricts(ctx context.Context, opts AggregateOptions) (any, error) {
	return e.api.get(ctx, "entities/race/districts.json", opts.params(false))
}

// Bundles returns bundling data for a politician.
func (e *Entities) Bundles(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	path := fmt.Sprintf("aggregates/pol/%s/bundles.json", url.PathEscape(entityID))
	return e.api.get(ctx, path, opts.params(false))
}

func asciiOnly(s string) string {
	return strings.Map(func(r rune) rune {
		if r > 127 {
			return -1
		}
		return r
	}, s)
}
