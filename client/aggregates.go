package client

import "context"

// Politician holds the aggregates of a politician entity.
type Politician struct {
	api *InfluenceExplorer
}

// Contributors returns the top organizational contributors.
func (p *Politician) Contributors(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "contributors", entityID, opts)
}

// Sectors returns contributions by sector. Not maintained upstream.
func (p *Politician) Sectors(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "sectors", entityID, opts)
}

// Industries returns contributions by industry.
func (p *Politician) Industries(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "industries", entityID, opts)
}

// IndustriesUnknown returns the count and total from unknown industries.
func (p *Politician) IndustriesUnknown(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "industries_unknown", entityID, opts)
}

// LocalBreakdown returns in-state vs. out-of-state contributions.
func (p *Politician) LocalBreakdown(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "local_breakdown", entityID, opts)
}

// ContributorTypeBreakdown returns contributions from individuals vs. PACs.
func (p *Politician) ContributorTypeBreakdown(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "contributor_type_breakdown", entityID, opts)
}

// Sparkline returns sparkline data for contributions received.
func (p *Politician) Sparkline(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "sparkline", entityID, opts)
}

// Earmarks returns the top earmarks requested.
func (p *Politician) Earmarks(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "earmarks", entityID, opts)
}

// EarmarksLocalBreakdown returns in-state vs. out-of-state earmark amounts.
func (p *Politician) EarmarksLocalBreakdown(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "earmarks_local_breakdown", entityID, opts)
}

// FECSummary returns the latest figures from the FEC summary report.
func (p *Politician) FECSummary(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "fec_summary", entityID, opts)
}

// FECTimeline returns weekly itemized fundraising totals for the candidate and opponents.
func (p *Politician) FECTimeline(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return p.api.Aggregate(ctx, "pol", "fec_timeline", entityID, opts)
}

// Individual holds the aggregates of an individual entity.
type Individual struct {
	api *InfluenceExplorer
}

// OrgRecipients returns the top organizations receiving contributions.
func (i *Individual) OrgRecipients(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return i.api.Aggregate(ctx, "indiv", "org_recipients", entityID, opts)
}

// PolRecipients returns the top politicians receiving contributions.
func (i *Individual) PolRecipients(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return i.api.Aggregate(ctx, "indiv", "pol_recipients", entityID, opts)
}

// PartyBreakdown returns contributions by recipient party.
func (i *Individual) PartyBreakdown(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return i.api.Aggregate(ctx, "indiv", "party_breakdown", entityID, opts)
}

// Registrants returns the lobbying firms that employed a registered lobbyist.
func (i *Individual) Registrants(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return i.api.Aggregate(ctx, "indiv", "registrants", entityID, opts)
}

// Issues returns the top issues a registered lobbyist lobbied on.
func (i *Individual) Issues(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return i.api.Aggregate(ctx, "indiv", "issues", entityID, opts)
}

// Clients returns the top clients of a registered lobbyist.
func (i *Individual) Clients(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return i.api.Aggregate(ctx, "indiv", "clients", entityID, opts)
}

// Sparkline returns sparkline data for contributions.
func (i *Individual) Sparkline(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return i.api.Aggregate(ctx, "indiv", "sparkline", entityID, opts)
}

// Organization holds the aggregates of an organization or industry entity.
type Organization struct {
	api *InfluenceExplorer
}

// Recipients returns the top politicians receiving contributions.
func (o *Organization) Recipients(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "recipients", entityID, opts)
}

// PACRecipients returns the top PACs receiving contributions.
func (o *Organization) PACRecipients(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "pac_recipients", entityID, opts)
}

// PartyBreakdown returns contributions by recipient party.
func (o *Organization) PartyBreakdown(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "party_breakdown", entityID, opts)
}

// LevelBreakdown returns the amount contributed to state vs. federal races.
func (o *Organization) LevelBreakdown(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "level_breakdown", entityID, opts)
}

// Registrants returns the lobbying firms hired by a lobbying client.
func (o *Organization) Registrants(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "registrants", entityID, opts)
}

// Issues returns the top issues a lobbying client lobbied on.
func (o *Organization) Issues(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "issues", entityID, opts)
}

// Bills returns the bills lobbied on by a lobbying client.
func (o *Organization) Bills(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "bills", entityID, opts)
}

// Lobbyists returns the lobbyists hired by a lobbying client.
func (o *Organization) Lobbyists(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "lobbyists", entityID, opts)
}

// RegistrantClients returns the clients of a lobbying firm.
func (o *Organization) RegistrantClients(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "registrant_clients", entityID, opts)
}

// RegistrantIssues returns the issues a lobbying firm lobbied on.
func (o *Organization) RegistrantIssues(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "registrant_issues", entityID, opts)
}

// RegistrantBills returns the bills a lobbying firm lobbied on.
func (o *Organization) RegistrantBills(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "registrant_bills", entityID, opts)
}

// RegistrantLobbyists returns the lobbyists employed by a lobbying firm.
func (o *Organization) RegistrantLobbyists(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "registrant_lobbyists", entityID, opts)
}

// IndustryOrgs returns the top organizations within an industry.
func (o *Organization) IndustryOrgs(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "industry_orgs", entityID, opts)
}

// Sparkline returns sparkline data for contributions.
func (o *Organization) Sparkline(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "sparkline", entityID, opts)
}

// SparklineByParty returns sparkline data split by recipient party.
func (o *Organization) SparklineByParty(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "sparkline_by_party", entityID, opts)
}

// FedSpending returns top federal grants and contracts received. Matching is full-text and may be wrong.
func (o *Organization) FedSpending(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "fed_spending", entityID, opts)
}

// Earmarks returns the top earmarks received.
func (o *Organization) Earmarks(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "earmarks", entityID, opts)
}

// ContractorMisconduct returns misconduct instances from the POGO database.
func (o *Organization) ContractorMisconduct(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "contractor_misconduct", entityID, opts)
}

// RegulationsText returns the regulatory dockets that mention the entity most.
func (o *Organization) RegulationsText(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "regulations_text", entityID, opts)
}

// RegulationsSubmitter returns the regulatory dockets with the most submissions from the entity.
func (o *Organization) RegulationsSubmitter(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "regulations_submitter", entityID, opts)
}

// EPAEcho returns EPA enforcement actions against the entity.
func (o *Organization) EPAEcho(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "epa_echo", entityID, opts)
}

// FACA returns employees' memberships on federal advisory committees.
func (o *Organization) FACA(ctx context.Context, entityID string, opts AggregateOptions) (any, error) {
	return o.api.Aggregate(ctx, "org", "faca", entityID, opts)
}
