package client

import (
	"fmt"

	"github.com/SanteonNL/transparencydata/types"
)

// TransparencyData groups the clients of the filterable resources.
type TransparencyData struct {
	Contributions *ResourceClient
	Lobbying      *ResourceClient
	Earmarks      *ResourceClient
	Grants        *ResourceClient
	Contracts     *ResourceClient
}

func New(cfg Config) (*TransparencyData, error) {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = NewHTTPClient(cfg.Timeout, cfg.Logger)
	}
	td := &TransparencyData{}
	var err error
	if td.Contributions, err = NewResourceClient(types.Contributions, cfg); err != nil {
		return nil, err
	}
	if td.Lobbying, err = NewResourceClient(types.Lobbying, cfg); err != nil {
		return nil, err
	}
	if td.Earmarks, err = NewResourceClient(types.Earmarks, cfg); err != nil {
		return nil, err
	}
	if td.Grants, err = NewResourceClient(types.Grants, cfg); err != nil {
		return nil, err
	}
	if td.Contracts, err = NewResourceClient(types.Contracts, cfg); err != nil {
		return nil, err
	}
	return td, nil
}

// Resource returns the client for a resource name.
func (td *TransparencyData) Resource(name string) (*ResourceClient, error) {
	switch name {
	case types.Contributions.Name:
		return td.Contributions, nil
	case types.Lobbying.Name:
		return td.Lobbying, nil
	case types.Earmarks.Name:
		return td.Earmarks, nil
	case types.Grants.Name:
		return td.Grants, nil
	case types.Contracts.Name:
		return td.Contracts, nil
	}
	return nil, fmt.Errorf("unknown resource %q", name)
}
