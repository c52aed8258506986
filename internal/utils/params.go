// File: internal/utils/params.go
package utils

import (
	"fmt"
	"net/url"

	"github.com/SanteonNL/transparencydata/types"
)

// ParseQueryParams validates filters against the resource allow-list and
// encodes them into query values. Every name is checked before anything is
// encoded. When several filters share a logical name the last one wins.
func ParseQueryParams(filters []types.Filter, resource types.ResourceSpec) (url.Values, error) {
	for _, f := range filters {
		if !resource.Allows(f.Name) {
			return nil, &types.UnknownParameterError{Resource: resource.Name, Param: f.Key()}
		}
	}

	query := url.Values{}
	for _, f := range filters {
		v, err := encode(f, resource)
		if err != nil {
			return nil, err
		}
		query.Set(f.Name, v)
	}
	return query, nil
}

func encode(f types.Filter, resource types.ResourceSpec) (string, error) {
	if h := resource.Handler(f.Name); h != nil {
		v, err := h(f)
		if err != nil {
			return "", fmt.Errorf("handler for %s: %w", f.Name, err)
		}
		return v, nil
	}
	return EncodeValue(f)
}
