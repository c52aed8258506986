package utils

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SanteonNL/transparencydata/types"
)

func TestParseQueryParams(t *testing.T) {
	filters := []types.Filter{
		types.Eq("contributor_state", "NY"),
		types.Gt("amount", 1000),
		types.In("cycle", 2008, 2010),
	}

	query, err := ParseQueryParams(filters, types.Contributions)
	require.NoError(t, err)
	assert.Equal(t, "NY", query.Get("contributor_state"))
	assert.Equal(t, ">|1000", query.Get("amount"))
	assert.Equal(t, "2008|2010", query.Get("cycle"))
	assert.Contains(t, query.Encode(), "amount=%3E%7C1000")
}

func TestParseQueryParams_TransportNamesAllowed(t *testing.T) {
	query, err := ParseQueryParams([]types.Filter{types.Eq("per_page", 50)}, types.Grants)
	require.NoError(t, err)
	assert.Equal(t, "50", query.Get("per_page"))
}

func TestParseQueryParams_UnknownParameter(t *testing.T) {
	tests := []struct {
		name   string
		filter types.Filter
		param  string
	}{
		{"not in allow-list", types.Eq("vendor_name", "ACME"), "vendor_name"},
		{"operator kept in message", types.Gt("vendor_name", 1), "vendor_name__gt"},
		{"unknown suffix is part of the name", types.ParseFilter("amount__gte", 1), "amount__gte"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseQueryParams([]types.Filter{types.Eq("amount", 1), tt.filter}, types.Contributions)
			var unknown *types.UnknownParameterError
			require.True(t, errors.As(err, &unknown), "got %v", err)
			assert.Equal(t, tt.param, unknown.Param)
			assert.Equal(t, "contributions", unknown.Resource)
		})
	}
}

func TestParseQueryParams_ValidatesBeforeEncoding(t *testing.T) {
	filters := []types.Filter{
		types.ParseFilter("date__between", "not a pair"),
		types.Eq("nope", 1),
	}
	_, err := ParseQueryParams(filters, types.Contributions)
	var unknown *types.UnknownParameterError
	assert.True(t, errors.As(err, &unknown), "got %v", err)
}

func TestParseQueryParams_LastFilterWins(t *testing.T) {
	filters := []types.Filter{types.Gt("amount", 10), types.Lt("amount", 20)}
	query, err := ParseQueryParams(filters, types.Contributions)
	require.NoError(t, err)
	assert.Equal(t, []string{"<|20"}, query["amount"])
}

func TestParseQueryParams_Handler(t *testing.T) {
	resource := types.ResourceSpec{
		Name:       "custom",
		Endpoint:   "custom.json",
		Parameters: []string{"name", "amount"},
		Handlers: map[string]types.ValueHandler{
			"name": func(f types.Filter) (string, error) {
				return strings.ToUpper(f.Value.(string)) + ":" + f.Op.String(), nil
			},
			"amount": func(f types.Filter) (string, error) {
				return "", errors.New("boom")
			},
		},
	}

	query, err := ParseQueryParams([]types.Filter{types.ParseFilter("name__in", "acme")}, resource)
	require.NoError(t, err)
	assert.Equal(t, "ACME:in", query.Get("name"))

	_, err = ParseQueryParams([]types.Filter{types.Eq("amount", 1)}, resource)
	assert.ErrorContains(t, err, "boom")
}
