package body

import (
	"encoding/json"
	"errors"
	"fmt"

	"golang.org/x/exp/slices"
)

// careerTotals is the totals key holding the all-cycles sum.
const careerTotals = "-1"

var (
	campFinMarkers              = []string{"contributor_count", "recipient_count"}
	lobbyingMarkers             = []string{"lobbying_count"}
	spendingMarkers             = []string{"grant_count", "loan_count", "contract_count"}
	earmarkMarkers              = []string{"earmark_count"}
	contractorMisconductMarkers = []string{"contractor_misconduct_count"}
	epaEchoMarkers              = []string{"epa_actions_count"}
	regulationsMarkers          = []string{"regs_docket_count", "regs_submitted_docket_count"}
	facaMarkers                 = []string{"faca_committee_count", "faca_member_count"}
)

// YearRange is the first and last year with data. Both are empty when there
// is no data.
type YearRange struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

func (y YearRange) IsEmpty() bool {
	return y.Start == "" && y.End == ""
}

// EntityMetadata is the metadata document of an entity, extended with the
// year ranges for which each kind of data exists.
type EntityMetadata struct {
	Fields map[string]any            `json:"-"`
	Totals map[string]map[string]any `json:"-"`

	Years                     YearRange `json:"years"`
	CampFinYears              YearRange `json:"camp_fin_years"`
	LobbyingYears             YearRange `json:"lobbying_years"`
	SpendingYears             YearRange `json:"spending_years"`
	EarmarkYears              YearRange `json:"earmark_years"`
	ContractorMisconductYears YearRange `json:"contractor_misconduct_years"`
	EPAEchoYears              YearRange `json:"epa_echo_years"`
	RegulationsYears          YearRange `json:"regulations_years"`
	FACAYears                 YearRange `json:"faca_years"`
}

// MarshalJSON writes the original fields together with the year ranges.
func (m EntityMetadata) MarshalJSON() ([]byte, error) {
	out := make(map[string]any, len(m.Fields)+9)
	for k, v := range m.Fields {
		out[k] = v
	}
	out["years"] = m.Years
	out["camp_fin_years"] = m.CampFinYears
	out["lobbying_years"] = m.LobbyingYears
	out["spending_years"] = m.SpendingYears
	out["earmark_years"] = m.EarmarkYears
	out["contractor_misconduct_years"] = m.ContractorMisconductYears
	out["epa_echo_years"] = m.EPAEchoYears
	out["regulations_years"] = m.RegulationsYears
	out["faca_years"] = m.FACAYears
	return json.Marshal(out)
}

// NewEntityMetadata builds metadata from a decoded entity document. The
// document must carry a "totals" object keyed by year.
func NewEntityMetadata(data any) (*EntityMetadata, error) {
	fields, ok := data.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", data)
	}
	rawTotals, ok := fields["totals"].(map[string]any)
	if !ok {
		return nil, errors.New("missing totals")
	}

	totals := make(map[string]map[string]any, len(rawTotals))
	for year, v := range rawTotals {
		values, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("totals for %s: expected a JSON object, got %T", year, v)
		}
		totals[year] = values
	}

	var all []string
	all = append(all, campFinMarkers...)
	all = append(all, lobbyingMarkers...)
	all = append(all, spendingMarkers...)
	return &EntityMetadata{
		Fields:                    fields,
		Totals:                    totals,
		Years:                     EntityYears(totals, all),
		CampFinYears:              EntityYears(totals, campFinMarkers),
		LobbyingYears:             EntityYears(totals, lobbyingMarkers),
		SpendingYears:             EntityYears(totals, spendingMarkers),
		EarmarkYears:              EntityYears(totals, earmarkMarkers),
		ContractorMisconductYears: EntityYears(totals, contractorMisconductMarkers),
		EPAEchoYears:              EntityYears(totals, epaEchoMarkers),
		RegulationsYears:          EntityYears(totals, regulationsMarkers),
		FACAYears:                 EntityYears(totals, facaMarkers),
	}, nil
}

// EntityYears returns the range of years whose totals carry a non-zero value
// for any of the given markers. Career totals are ignored.
func EntityYears(totals map[string]map[string]any, markers []string) YearRange {
	var years []string
	for year, values := range totals {
		if year == careerTotals {
			continue
		}
		for k, v := range values {
			if slices.Contains(markers, k) && truthy(v) {
				years = append(years, year)
				break
			}
		}
	}
	if len(years) == 0 {
		return YearRange{}
	}
	slices.Sort(years)
	return YearRange{Start: years[0], End: years[len(years)-1]}
}

func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case float64:
		return x != 0
	case string:
		return x != ""
	case []any:
		return len(x) > 0
	case map[string]any:
		return len(x) > 0
	default:
		return true
	}
}
