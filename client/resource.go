package client

import (
	"context"
	"maps"
	"strconv"

	"github.com/SanteonNL/transparencydata/body"
	"github.com/SanteonNL/transparencydata/internal/utils"
	"github.com/SanteonNL/transparencydata/types"
)

// ResourceClient queries one filterable resource. It is immutable and safe
// for concurrent use.
type ResourceClient struct {
	requester
	resource types.ResourceSpec
	debug    bool
}

// Response is the outcome of Execute. Data is nil in debug mode.
type Response struct {
	URL  string
	Data any
}

func NewResourceClient(resource types.ResourceSpec, cfg Config) (*ResourceClient, error) {
	r, err := newRequester(cfg)
	if err != nil {
		return nil, err
	}
	resource.Parameters = append([]string(nil), resource.Parameters...)
	resource.Handlers = maps.Clone(resource.Handlers)
	return &ResourceClient{requester: r, resource: resource, debug: cfg.Debug}, nil
}

// Resource returns the resource this client is bound to.
func (c *ResourceClient) Resource() types.ResourceSpec {
	return c.resource
}

// URL validates and encodes filters and returns the request URL.
func (c *ResourceClient) URL(filters []types.Filter, page types.Page) (string, error) {
	query, err := utils.ParseQueryParams(filters, c.resource)
	if err != nil {
		return "", err
	}
	if page.Page > 0 {
		query.Set("page", strconv.Itoa(page.Page))
	}
	if page.PerPage > 0 {
		query.Set("per_page", strconv.Itoa(page.PerPage))
	}
	return c.buildURL(c.resource.Endpoint, query)
}

// Execute validates filters, sends one GET and returns the decoded JSON. In
// debug mode only the URL is returned and nothing is sent.
func (c *ResourceClient) Execute(ctx context.Context, filters []types.Filter, page types.Page) (*Response, error) {
	uri, err := c.URL(filters, page)
	if err != nil {
		return nil, err
	}
	if c.debug {
		return &Response{URL: uri}, nil
	}
	data, err := c.getJSON(ctx, c.resource.Endpoint, uri)
	if err != nil {
		return nil, err
	}
	return &Response{URL: uri, Data: data}, nil
}

// ExecuteMap is Execute for keyword-style filters such as "amount__gt".
func (c *ResourceClient) ExecuteMap(ctx context.Context, filters map[string]any, page types.Page) (*Response, error) {
	return c.Execute(ctx, types.FiltersFromMap(filters), page)
}

// Records executes the query and decodes a list response. Debug mode returns
// no records.
func (c *ResourceClient) Records(ctx context.Context, filters []types.Filter, page types.Page) ([]body.Record, error) {
	resp, err := c.Execute(ctx, filters, page)
	if err != nil {
		return nil, err
	}
	if c.debug {
		return nil, nil
	}
	records, err := body.RecordsFrom(resp.Data)
	if err != nil {
		return nil, &types.InvalidResponseError{Endpoint: c.resource.Endpoint, Err: err}
	}
	return records, nil
}
