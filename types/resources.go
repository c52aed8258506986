package types

import "golang.org/x/exp/slices"

var Contributions = ResourceSpec{
	Name:     "contributions",
	Endpoint: "contributions.json",
	Parameters: []string{
		"contributor_state",
		"recipient_state",
		"cycle",
		"for_against",
		"contributor_industry",
		"seat",
		"transaction_namespace",
		"transaction_type",
		"contributor_ext_id",
		"recipient_ext_id",
		"organization_ext_id",
		"parent_organization_ext_id",
		"committee_ext_id",
		"contributor_type",
		"recipient_type",
		"date",
		"amount",
		"committee_ft",
		"contributor_ft",
		"employer_ft",
		"organization_ft",
		"recipient_ft",
	},
}

var Lobbying = ResourceSpec{
	Name:     "lobbying",
	Endpoint: "lobbying.json",
	Parameters: []string{
		"lobbyist_is_rep",
		"industry",
		"transaction_id",
		"transaction_type",
		"filing_type",
		"year",
		"issue",
		"client_ext_id",
		"lobbyist_ext_id",
		"candidate_ext_id",
		"client_ft",
		"client_parent_ft",
		"lobbyist_ft",
		"registrant_ft",
		"issue_ft",
	},
}

var Earmarks = ResourceSpec{
	Name:     "earmarks",
	Endpoint: "earmarks.json",
	Parameters: []string{
		"year",
		"state",
		"member_party",
		"member_state",
		"bill",
		"description",
		"city",
		"member",
		"recipient",
	},
}

var Grants = ResourceSpec{
	Name:     "grants",
	Endpoint: "grants.json",
	Parameters: []string{
		"assistance_type",
		"fiscal_year",
		"recipient_state",
		"recipient_type",
		"agency_ft",
		"recipient_ft",
	},
}

var Contracts = ResourceSpec{
	Name:     "contracts",
	Endpoint: "contracts.json",
	Parameters: []string{
		"agency_id",
		"contracting_agency_id",
		"fiscal_year",
		"place_district",
		"place_state",
		"requesting_agency_id",
		"vendor_state",
		"vendor_zipcode",
		"vendor_district",
		"vendor_duns",
		"vendor_parent_duns",
		"agency_name",
		"contracting_agency_name",
		"requesting_agency_name",
		"vendor_name",
		"vendor_city",
		"obligated_amount",
		"current_amount",
		"maximum_amount",
	},
}

// Resources returns the resource catalog in a stable order.
func Resources() []ResourceSpec {
	return []ResourceSpec{Contributions, Lobbying, Earmarks, Grants, Contracts}
}

// LookupResource finds a resource by name.
func LookupResource(name string) (ResourceSpec, bool) {
	all := Resources()
	i := slices.IndexFunc(all, func(r ResourceSpec) bool { return r.Name == name })
	if i < 0 {
		return ResourceSpec{}, false
	}
	return all[i], true
}
