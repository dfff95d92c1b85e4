package design

import (
	"strings"

	"disena_service/internal/domain/entities"
)

// Area budget bounds (m2). The configurator clamps any requested total
// into this range.
const (
	MinTotalAreaM2 = 80.0
	MaxTotalAreaM2 = 1000.0
)

// DefaultAreaM2 is the fixed footprint of the five baseline services
// that every session starts with. It is a constant of the flow, not a
// sum recomputed from the catalog: the completion percentage is always
// measured against total − DefaultAreaM2.
const DefaultAreaM2 = 40.0

// AreaRule supplies the numeric constraints for one catalog service.
// MaxUnits == 0 means unlimited repeats; AreaM2 == 0 means the service
// has no footprint (intangible additions such as consulting).
type AreaRule struct {
	AreaM2   float64
	MaxUnits int
}

// The table is keyed by the English localized service name because the
// catalog does not serve area data; the source system hard-codes these
// values next to the page. A service missing here simply has no
// area/unit constraint (fails open).
var areaRules = map[string]AreaRule{
	// Default baseline, combined footprint = DefaultAreaM2.
	"small room":      {AreaM2: 12},
	"small bathroom":  {AreaM2: 6},
	"small half-bath": {AreaM2: 4},
	"parking":         {AreaM2: 14},
	"laundry/storage": {AreaM2: 4},

	"room":           {AreaM2: 16, MaxUnits: 5},
	"master bedroom": {AreaM2: 20, MaxUnits: 3},
	"bathroom":       {AreaM2: 8, MaxUnits: 5},
	"half-bath":      {AreaM2: 5, MaxUnits: 4},
	"kitchen":        {AreaM2: 15, MaxUnits: 2},
	"open kitchen":   {AreaM2: 18, MaxUnits: 1},
	"living room":    {AreaM2: 25, MaxUnits: 2},
	"dining room":    {AreaM2: 20, MaxUnits: 2},
	"studio":         {AreaM2: 12, MaxUnits: 3},
	"walk-in closet": {AreaM2: 6, MaxUnits: 5},
	"garage":         {AreaM2: 20, MaxUnits: 3},
	"terrace":        {AreaM2: 15, MaxUnits: 2},
	"balcony":        {AreaM2: 8, MaxUnits: 4},
	"pool":           {AreaM2: 30, MaxUnits: 1},
	"garden":         {AreaM2: 40, MaxUnits: 1},
	"bbq area":       {AreaM2: 12, MaxUnits: 1},
	"gym":            {AreaM2: 18, MaxUnits: 1},
	"home office":    {AreaM2: 10, MaxUnits: 3},
	"service room":   {AreaM2: 10, MaxUnits: 2},
}

// baselineNames lists the five services pre-selected at session start,
// in seeding order.
var baselineNames = []string{
	"small room",
	"small bathroom",
	"small half-bath",
	"parking",
	"laundry/storage",
}

func ruleKey(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// RuleFor looks up the area rule for a service by its English name.
// Unknown services get the zero rule: no footprint, no unit cap.
func RuleFor(svc entities.Service) (AreaRule, bool) {
	r, ok := areaRules[ruleKey(svc.NameEN)]
	return r, ok
}

// AreaOf is the footprint a selection of svc consumes; 0 for services
// without an area rule.
func AreaOf(svc entities.Service) float64 {
	r, _ := RuleFor(svc)
	return r.AreaM2
}

// MaxUnitsOf returns the unit cap for svc; 0 means unlimited.
func MaxUnitsOf(svc entities.Service) int {
	r, _ := RuleFor(svc)
	return r.MaxUnits
}

// IsBaseline reports whether svc is one of the five default baseline
// services.
func IsBaseline(svc entities.Service) bool {
	key := ruleKey(svc.NameEN)
	for _, n := range baselineNames {
		if key == n {
			return true
		}
	}
	return false
}

// SeedBaseline inserts one instance of each baseline service present in
// the snapshot into the ledger. A baseline name absent from the catalog
// is silently skipped; the data shapes are owned by different teams and
// a partial baseline must not break session creation.
func SeedBaseline(ledger *entities.Ledger, snap entities.CatalogSnapshot) {
	for _, name := range baselineNames {
		svc, ok := snap.ServiceByNameEN(name)
		if !ok {
			continue
		}
		ledger.Append(svc.CategoryID, svc.ID)
	}
}
