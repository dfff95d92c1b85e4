package design

import "disena_service/internal/domain/entities"

// RemediationAction names one way out of an exhausted suggestion set.
type RemediationAction string

const (
	// RemediationShrinkTotalArea proposes lowering the total budget to
	// the area already used (never below the floor).
	RemediationShrinkTotalArea RemediationAction = "shrink_total_area"
	// RemediationRaiseTotalArea asks the user to raise the budget; no
	// value is proposed, the user edits and the caller re-invokes.
	RemediationRaiseTotalArea RemediationAction = "raise_total_area"
)

type Remediation struct {
	Action      RemediationAction `json:"action"`
	TotalAreaM2 float64           `json:"total_area_m2,omitempty"`
}

// SuggestionSet is the filler proposal produced when a quote is
// requested with an unmet budget. Candidates preserve catalog order so
// the output is deterministic.
type SuggestionSet struct {
	MissingAreaM2 float64            `json:"missing_area_m2"`
	Candidates    []entities.Service `json:"candidates"`
	Exhausted     bool               `json:"exhausted"`
	Remediations  []Remediation      `json:"remediations,omitempty"`
}

// Suggest proposes catalog services that still fit the remaining
// non-default budget. A candidate must have a positive footprint, fit
// in (additionalArea − areaUsedByOthers), not already be selected, and
// not be a baseline service. When nothing fits the set is Exhausted and
// carries exactly two remediations.
func Suggest(ledger *entities.Ledger, snap entities.CatalogSnapshot, view AllocationView) SuggestionSet {
	set := SuggestionSet{}

	if missing := view.TotalAreaM2 - view.AreaUsedTotalM2; missing > 0 {
		set.MissingAreaM2 = missing
	}

	headroom := view.AdditionalAreaM2 - view.AreaUsedByOthersM2
	for _, svc := range snap.Services {
		area := AreaOf(svc)
		if area <= 0 {
			continue
		}
		if area > headroom {
			continue
		}
		if ledger.Selected(svc.ID) {
			continue
		}
		if IsBaseline(svc) {
			continue
		}
		set.Candidates = append(set.Candidates, svc)
	}

	if len(set.Candidates) == 0 {
		set.Exhausted = true
		shrinkTo := view.AreaUsedTotalM2
		if shrinkTo < MinTotalAreaM2 {
			shrinkTo = MinTotalAreaM2
		}
		set.Remediations = []Remediation{
			{Action: RemediationShrinkTotalArea, TotalAreaM2: shrinkTo},
			{Action: RemediationRaiseTotalArea},
		}
	}

	return set
}

// IsCandidate reports whether serviceID appears in the set.
func (s SuggestionSet) IsCandidate(serviceID string) bool {
	for _, svc := range s.Candidates {
		if svc.ID == serviceID {
			return true
		}
	}
	return false
}
