package types

import "golang.org/x/exp/slices"

// TransportParameters are accepted by every resource in addition to its own
// allow-list.
var TransportParameters = []string{"apikey", "page", "per_page"}

// ValueHandler replaces the generic encoding for one logical parameter name.
// The returned string is used verbatim as the wire value.
type ValueHandler func(f Filter) (string, error)

// ResourceSpec describes one filterable API resource.
type ResourceSpec struct {
	Name       string
	Endpoint   string
	Parameters []string
	Handlers   map[string]ValueHandler
}

// Allows reports whether name is in the allow-list or a transport parameter.
func (r ResourceSpec) Allows(name string) bool {
	return slices.Contains(r.Parameters, name) || slices.Contains(TransportParameters, name)
}

// Handler returns the value handler registered for name, if any.
func (r ResourceSpec) Handler(name string) ValueHandler {
	if r.Handlers == nil {
		return nil
	}
	return r.Handlers[name]
}

// Page carries the optional pagination parameters. Zero values are not sent.
type Page struct {
	Page    int
	PerPage int
}
