package entities

import "strings"

// Category groups catalog services for navigation. It carries no area
// semantics of its own.
type Category struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Service is one purchasable architectural service from the catalog.
//
// The catalog only serves identity, localization and pricing. Area
// footprint and unit caps come from the static area rules table, keyed
// by the English name (the source system hard-codes them the same way).
type Service struct {
	ID          string  `json:"id"`
	CategoryID  string  `json:"category_id"`
	NameEN      string  `json:"name_en"`
	NameES      string  `json:"name_es"`
	PriceMinUSD float64 `json:"price_min_usd"`
}

// CatalogSnapshot is the immutable per-session view of the catalog.
//
// It is fetched once when the session is created and never mutated
// afterwards; every selection must reference a service present here.
type CatalogSnapshot struct {
	Categories []Category        `json:"categories"`
	Services   []Service         `json:"services"`
	Config     map[string]string `json:"config,omitempty"`
}

func (s CatalogSnapshot) IsEmpty() bool {
	return len(s.Categories) == 0 && len(s.Services) == 0
}

// FirstCategoryID returns the initially active category (catalog order).
func (s CatalogSnapshot) FirstCategoryID() string {
	if len(s.Categories) == 0 {
		return ""
	}
	return s.Categories[0].ID
}

func (s CatalogSnapshot) ServiceByID(id string) (Service, bool) {
	for _, svc := range s.Services {
		if svc.ID == id {
			return svc, true
		}
	}
	return Service{}, false
}

// ServiceByNameEN resolves a service by its English localized name,
// case-insensitively. Used to locate baseline services, which the
// catalog identifies only by name.
func (s CatalogSnapshot) ServiceByNameEN(name string) (Service, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, svc := range s.Services {
		if strings.ToLower(strings.TrimSpace(svc.NameEN)) == name {
			return svc, true
		}
	}
	return Service{}, false
}

// ServicesByCategory preserves catalog order within the category.
func (s CatalogSnapshot) ServicesByCategory(categoryID string) []Service {
	var out []Service
	for _, svc := range s.Services {
		if svc.CategoryID == categoryID {
			out = append(out, svc)
		}
	}
	return out
}

func (s CatalogSnapshot) HasCategory(id string) bool {
	for _, c := range s.Categories {
		if c.ID == id {
			return true
		}
	}
	return false
}
