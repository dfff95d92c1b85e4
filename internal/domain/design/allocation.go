package design

import (
	"math"

	"disena_service/internal/domain/entities"
)

// ValidationLevel tags the severity of one validation outcome. The flow
// deliberately keeps most constraints advisory: over-limit selections
// and over-budget states warn, they do not block interaction.
type ValidationLevel string

const (
	ValidationOk       ValidationLevel = "ok"
	ValidationWarning  ValidationLevel = "warning"
	ValidationBlocking ValidationLevel = "blocking"
)

type Validation struct {
	Level  ValidationLevel `json:"level"`
	Reason string          `json:"reason,omitempty"`
}

// OverLimitWarning flags a service whose instance count exceeds its
// unit cap. Advisory only.
type OverLimitWarning struct {
	ServiceID string `json:"service_id"`
	NameEN    string `json:"name_en"`
	Units     int    `json:"units"`
	MaxUnits  int    `json:"max_units"`
}

// AllocationView is the full area accounting for one ledger/budget
// pair. It is a pure function of its inputs: recomputing without a
// mutation in between yields an identical view.
//
// PercentComplete is intentionally NOT capped at 100. Over-allocation
// shows a percentage above 100 while AreaExceeded is a separate,
// independently derived signal; the two must not be merged.
type AllocationView struct {
	TotalAreaM2          float64            `json:"total_area_m2"`
	AreaUsedTotalM2      float64            `json:"area_used_total_m2"`
	AreaUsedByDefaultsM2 float64            `json:"area_used_by_defaults_m2"`
	AreaUsedByOthersM2   float64            `json:"area_used_by_others_m2"`
	AdditionalAreaM2     float64            `json:"additional_area_m2"`
	AreaRemainingM2      float64            `json:"area_remaining_m2"`
	PercentComplete      int                `json:"percent_complete"`
	AreaExceeded         bool               `json:"area_exceeded"`
	OverLimit            []OverLimitWarning `json:"over_limit,omitempty"`
}

// ComputeAllocation recomputes the area accounting for the ledger under
// the given total area budget. Services without an area rule contribute
// zero footprint.
func ComputeAllocation(ledger *entities.Ledger, snap entities.CatalogSnapshot, totalAreaM2 float64) AllocationView {
	view := AllocationView{TotalAreaM2: totalAreaM2}

	counts := map[string]int{}
	for _, e := range ledger.Entries {
		svc, ok := snap.ServiceByID(e.ServiceID)
		if !ok {
			// Ledger entries are validated against the snapshot on
			// insertion; an unknown id here is a programming error.
			// Skip rather than poison the whole view.
			continue
		}
		area := AreaOf(svc)
		view.AreaUsedTotalM2 += area
		if IsBaseline(svc) {
			view.AreaUsedByDefaultsM2 += area
		} else {
			view.AreaUsedByOthersM2 += area
		}
		counts[svc.ID]++
	}

	view.AdditionalAreaM2 = totalAreaM2 - DefaultAreaM2
	if view.AdditionalAreaM2 > 0 {
		view.PercentComplete = int(math.Round(100 * view.AreaUsedByOthersM2 / view.AdditionalAreaM2))
	}
	view.AreaRemainingM2 = totalAreaM2 - view.AreaUsedTotalM2
	view.AreaExceeded = view.AreaRemainingM2 < 0

	// Unit-cap check, advisory. Iterate ledger order so the warning list
	// is deterministic.
	flagged := map[string]bool{}
	for _, e := range ledger.Entries {
		if flagged[e.ServiceID] {
			continue
		}
		svc, ok := snap.ServiceByID(e.ServiceID)
		if !ok {
			continue
		}
		max := MaxUnitsOf(svc)
		if max > 0 && counts[svc.ID] > max {
			view.OverLimit = append(view.OverLimit, OverLimitWarning{
				ServiceID: svc.ID,
				NameEN:    svc.NameEN,
				Units:     counts[svc.ID],
				MaxUnits:  max,
			})
			flagged[e.ServiceID] = true
		}
	}

	return view
}

// Verdict condenses the view into the tagged ok/warning shape the UI
// row-level messaging consumes. Nothing the engine reports is blocking.
func (v AllocationView) Verdict() Validation {
	switch {
	case v.AreaExceeded:
		return Validation{Level: ValidationWarning, Reason: "area budget exceeded"}
	case len(v.OverLimit) > 0:
		return Validation{Level: ValidationWarning, Reason: "service unit cap exceeded"}
	default:
		return Validation{Level: ValidationOk}
	}
}

// BudgetAdvisory reports a clamped budget edit. Advisory only: the
// clamped value is always accepted.
type BudgetAdvisory string

const (
	BudgetAdvisoryNone            BudgetAdvisory = ""
	BudgetAdvisoryFloorClamped    BudgetAdvisory = "floor_clamped"
	BudgetAdvisoryCeilingExceeded BudgetAdvisory = "ceiling_exceeded"
)

// ClampTotalArea bounds a requested total area to [MinTotalAreaM2,
// MaxTotalAreaM2] and reports which bound, if any, was hit.
func ClampTotalArea(requested float64) (float64, BudgetAdvisory) {
	switch {
	case requested < MinTotalAreaM2:
		return MinTotalAreaM2, BudgetAdvisoryFloorClamped
	case requested > MaxTotalAreaM2:
		return MaxTotalAreaM2, BudgetAdvisoryCeilingExceeded
	default:
		return requested, BudgetAdvisoryNone
	}
}
