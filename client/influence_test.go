package client

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanteonNL/transparencydata/types"
)

func newExplorer(t *testing.T, routes map[string]string) (*InfluenceExplorer, *fakeAPI) {
	t.Helper()
	f := newFakeAPI(t, routes)
	ie, err := NewInfluenceExplorer(Config{APIKey: "K", BaseURL: f.baseURL()})
	require.NoError(t, err)
	return ie, f
}

func TestEntities_Search(t *testing.T) {
	ie, f := newExplorer(t, map[string]string{"/entities.json": `[{"id": "e1", "name": "John Boehner"}]`})

	data, err := ie.Entities.Search(context.Background(), "john böehner")
	require.NoError(t, err)
	assert.Len(t, data, 1)

	q := f.query("entities.json")
	assert.Equal(t, "john behner", q.Get("search"))
	assert.Equal(t, "K", q.Get("apikey"))
}

func TestEntities_Metadata(t *testing.T) {
	ie, _ := newExplorer(t, map[string]string{
		"/entities/{id}.json": `{"name": "ACME", "totals": {"2008": {"lobbying_count": 2}, "2010": {"lobbying_count": 1}}}`,
	})

	md, err := ie.Entities.Metadata(context.Background(), "abc123")
	require.NoError(t, err)
	assert.Equal(t, "2008", md.LobbyingYears.Start)
	assert.Equal(t, "2010", md.LobbyingYears.End)
	assert.True(t, md.CampFinYears.IsEmpty())
}

func TestEntities_MetadataWithoutTotals(t *testing.T) {
	ie, _ := newExplorer(t, map[string]string{"/entities/{id}.json": `{"name": "ACME"}`})

	_, err := ie.Entities.Metadata(context.Background(), "abc123")
	var invalid *types.InvalidResponseError
	assert.True(t, errors.As(err, &invalid), "got %v", err)
}

func TestEntities_Count(t *testing.T) {
	ie, f := newExplorer(t, map[string]string{"/entities/list.json": `{"count": "1234"}`})

	n, err := ie.Entities.Count(context.Background(), "organization")
	require.NoError(t, err)
	assert.Equal(t, 1234, n)

	q := f.query("entities/list.json")
	assert.Equal(t, "1", q.Get("count"))
	assert.Equal(t, "organization", q.Get("type"))

	_, err = ie.Entities.Count(context.Background(), "")
	require.NoError(t, err)
	assert.NotContains(t, f.query("entities/list.json"), "type")
}

func TestEntities_List(t *testing.T) {
	ie, f := newExplorer(t, map[string]string{"/entities/list.json": `[]`})

	_, err := ie.Entities.List(context.Background(), 0, 50, "")
	require.NoError(t, err)

	q := f.query("entities/list.json")
	assert.Equal(t, "0", q.Get("start"))
	assert.Equal(t, "50", q.Get("end"))
	assert.NotContains(t, q, "count")
}

func TestEntities_IDLookup(t *testing.T) {
	ie, f := newExplorer(t, map[string]string{"/entities/id_lookup.json": `[{"id": "e1"}]`})

	_, err := ie.Entities.IDLookup(context.Background(), "urn:crp:recipient", "N00003675")
	require.NoError(t, err)

	q := f.query("entities/id_lookup.json")
	assert.Equal(t, "urn:crp:recipient", q.Get("namespace"))
	assert.Equal(t, "N00003675", q.Get("id"))
}

func TestEntities_Top(t *testing.T) {
	ie, f := newExplorer(t, map[string]string{
		"/aggregates/pols/top_10.json": `[]`,
		"/aggregates/orgs/top_5.json":  `[]`,
	})

	_, err := ie.Entities.TopPoliticians(context.Background(), AggregateOptions{})
	require.NoError(t, err)
	q := f.query("aggregates/pols/top_10.json")
	assert.Equal(t, DefaultCycle, q.Get("cycle"))
	assert.NotContains(t, q, "limit")

	_, err = ie.Entities.TopOrganizations(context.Background(), AggregateOptions{Cycle: "2010", Limit: 5})
	require.NoError(t, err)
	assert.Equal(t, "2010", f.query("aggregates/orgs/top_5.json").Get("cycle"))
}

func TestAggregates(t *testing.T) {
	ie, f := newExplorer(t, map[string]string{
		"/aggregates/pol/{id}/contributors.json":            `[{"name": "ACME"}]`,
		"/aggregates/pol/{id}/sparkline.json":               `[]`,
		"/aggregates/indiv/{id}/recipient_pols.json":        `[]`,
		"/aggregates/org/{id}/epa_enforcement_actions.json": `[]`,
		"/aggregates/industry/{id}/orgs.json":               `[]`,
	})
	ctx := context.Background()

	data, err := ie.Pol.Contributors(ctx, "p1", AggregateOptions{Cycle: "2012", Limit: 20})
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{"name": "ACME"}}, data)
	q := f.query("aggregates/pol/p1/contributors.json")
	assert.Equal(t, "2012", q.Get("cycle"))
	assert.Equal(t, "20", q.Get("limit"))

	_, err = ie.Pol.Sparkline(ctx, "p1", AggregateOptions{Limit: 20})
	require.NoError(t, err)
	q = f.query("aggregates/pol/p1/sparkline.json")
	assert.Equal(t, DefaultCycle, q.Get("cycle"))
	assert.NotContains(t, q, "limit", "sparkline takes no limit")

	_, err = ie.Indiv.PolRecipients(ctx, "i1", AggregateOptions{})
	require.NoError(t, err)
	assert.NotContains(t, f.query("aggregates/indiv/i1/recipient_pols.json"), "limit")

	_, err = ie.Org.EPAEcho(ctx, "o1", AggregateOptions{Limit: 3})
	require.NoError(t, err)
	assert.Equal(t, "3", f.query("aggregates/org/o1/epa_enforcement_actions.json").Get("limit"))

	_, err = ie.Org.IndustryOrgs(ctx, "in1", AggregateOptions{})
	require.NoError(t, err)
}

func TestAggregate_Unknown(t *testing.T) {
	ie, f := newExplorer(t, nil)

	_, err := ie.Aggregate(context.Background(), "pol", "nope", "p1", AggregateOptions{})
	assert.Error(t, err)
	_, err = ie.Aggregate(context.Background(), "pac", "contributors", "p1", AggregateOptions{})
	assert.Error(t, err)
	_, err = ie.Aggregate(context.Background(), "pol", "contributors", "", AggregateOptions{})
	assert.Error(t, err)
	assert.Zero(t, f.calls.Load())
}

func TestAggregateMethods(t *testing.T) {
	assert.Equal(t, []string{"indiv", "org", "pol"}, AggregateKinds())
	methods := AggregateMethods("indiv")
	assert.Equal(t, []string{"clients", "issues", "org_recipients", "party_breakdown", "pol_recipients", "registrants", "sparkline"}, methods)
	assert.Empty(t, AggregateMethods("pac"))
}

func TestNewInfluenceExplorer_MissingAPIKey(t *testing.T) {
	_, err := NewInfluenceExplorer(Config{})
	assert.ErrorIs(t, err, types.ErrMissingAPIKey)
}
