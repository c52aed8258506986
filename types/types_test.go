package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitParamName(t *testing.T) {
	tests := []struct {
		key  string
		name string
		op   Operator
	}{
		{"cycle", "cycle", OpEq},
		{"cycle__in", "cycle", OpIn},
		{"amount__gt", "amount", OpGt},
		{"amount__lt", "amount", OpLt},
		{"date__between", "date", OpBetween},
		{"cycle__eq", "cycle", OpEq},
		{"seat__unknown", "seat__unknown", OpEq},
		{"a__in__gt", "a__in__gt", OpEq},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			name, op := SplitParamName(tt.key)
			assert.Equal(t, tt.name, name)
			assert.Equal(t, tt.op, op)
		})
	}
}

func TestFilterKey(t *testing.T) {
	assert.Equal(t, "cycle", Eq("cycle", 2008).Key())
	assert.Equal(t, "amount__gt", Gt("amount", 1).Key())
	assert.Equal(t, "cycle__in", In("cycle", 2008, 2010).Key())

	d := time.Date(2008, 1, 1, 0, 0, 0, 0, time.UTC)
	f := Between("date", d, d)
	assert.Equal(t, "date__between", f.Key())
	assert.Equal(t, []time.Time{d, d}, f.Value)
}

func TestFiltersFromMap(t *testing.T) {
	filters := FiltersFromMap(map[string]any{
		"contributor_state": "NY",
		"amount__gt":        1000,
		"cycle__in":         []int{2008, 2010},
	})
	assert.Equal(t, []Filter{
		{Name: "amount", Op: OpGt, Value: 1000},
		{Name: "contributor_state", Op: OpEq, Value: "NY"},
		{Name: "cycle", Op: OpIn, Value: []int{2008, 2010}},
	}, filters)

	assert.Empty(t, FiltersFromMap(nil))
}

func TestResourceSpec_Allows(t *testing.T) {
	assert.True(t, Contributions.Allows("contributor_state"))
	assert.True(t, Contributions.Allows("per_page"))
	assert.True(t, Contributions.Allows("apikey"))
	assert.False(t, Contributions.Allows("vendor_duns"))
	assert.True(t, Contracts.Allows("place_district"))
	assert.Nil(t, Contracts.Handler("place_district"))
}

func TestLookupResource(t *testing.T) {
	r, ok := LookupResource("earmarks")
	require.True(t, ok)
	assert.Equal(t, "earmarks.json", r.Endpoint)

	_, ok = LookupResource("loans")
	assert.False(t, ok)

	names := make([]string, 0, 5)
	for _, r := range Resources() {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"contributions", "lobbying", "earmarks", "grants", "contracts"}, names)
}

func TestDate(t *testing.T) {
	d, err := ParseDate(" 2008-12-31 ")
	require.NoError(t, err)
	assert.Equal(t, "2008-12-31", d.String())

	_, err = ParseDate("12/31/2008")
	assert.Error(t, err)

	for in, want := range map[string]string{"2008-06": "2008-06-01", "2008": "2008-01-01"} {
		d, err := ParseDate(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, d.String())
	}

	_, err = ParseDate("soon")
	assert.Error(t, err)

	assert.Equal(t, "2010-11-02", NewDate(time.Date(2010, 11, 2, 15, 0, 0, 0, time.UTC)).String())
}

func TestErrors(t *testing.T) {
	err := &UnknownParameterError{Resource: "contributions", Param: "vendor_duns"}
	assert.Equal(t, "vendor_duns is not a valid parameter for contributions", err.Error())

	shape := &InvalidParameterShapeError{Param: "date", Op: OpBetween, Reason: "must be a sequence of two dates"}
	assert.Equal(t, "date__between: must be a sequence of two dates", shape.Error())

	remote := &RemoteRequestError{Endpoint: "grants.json", StatusCode: 500, Body: []byte("boom")}
	assert.Contains(t, remote.Error(), "500")
	assert.ErrorIs(t, &RemoteRequestError{Err: assert.AnError}, assert.AnError)
}
