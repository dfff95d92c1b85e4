package entities

// SelectionEntry is one chosen instance of a service within a category.
// The same service may appear multiple times; each occurrence is one
// purchased unit.
type SelectionEntry struct {
	ServiceID  string `json:"service_id"`
	CategoryID string `json:"category_id"`
}

// Ledger holds the ordered selection state of a configurator session.
//
// Entries keep insertion order: the area math does not care, but "most
// recent instance" matters for removal/undo, and quote line items are
// emitted in this order. The exported slice keeps the ledger directly
// (un)marshalable for session persistence.
type Ledger struct {
	Entries []SelectionEntry `json:"entries"`
}

func NewLedger() *Ledger {
	return &Ledger{}
}

// Append adds one instance unconditionally. This is the increment
// primitive used by the suggestion "add" action; it never removes.
func (l *Ledger) Append(categoryID, serviceID string) {
	l.Entries = append(l.Entries, SelectionEntry{ServiceID: serviceID, CategoryID: categoryID})
}

// Toggle is the on/off primitive behind a catalog cell click: if any
// instance of the service exists in the category, exactly one is
// removed; otherwise one is appended. Returns true when the toggle
// resulted in a selection being present.
func (l *Ledger) Toggle(categoryID, serviceID string) bool {
	if l.removeLatest(categoryID, serviceID) {
		return false
	}
	l.Append(categoryID, serviceID)
	return true
}

// Remove drops the most recently added instance of the service in the
// category. Returns false when no instance was present.
func (l *Ledger) Remove(categoryID, serviceID string) bool {
	return l.removeLatest(categoryID, serviceID)
}

func (l *Ledger) removeLatest(categoryID, serviceID string) bool {
	for i := len(l.Entries) - 1; i >= 0; i-- {
		e := l.Entries[i]
		if e.ServiceID == serviceID && e.CategoryID == categoryID {
			l.Entries = append(l.Entries[:i], l.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// CountOf returns the number of instances of the service across all
// categories (unit-cap accounting is per service, not per category).
func (l *Ledger) CountOf(serviceID string) int {
	n := 0
	for _, e := range l.Entries {
		if e.ServiceID == serviceID {
			n++
		}
	}
	return n
}

func (l *Ledger) Selected(serviceID string) bool {
	return l.CountOf(serviceID) > 0
}

func (l *Ledger) SelectedInCategory(categoryID, serviceID string) bool {
	for _, e := range l.Entries {
		if e.ServiceID == serviceID && e.CategoryID == categoryID {
			return true
		}
	}
	return false
}

// EntriesByCategory preserves insertion order within the category.
func (l *Ledger) EntriesByCategory(categoryID string) []SelectionEntry {
	var out []SelectionEntry
	for _, e := range l.Entries {
		if e.CategoryID == categoryID {
			out = append(out, e)
		}
	}
	return out
}

// Clone returns an independent copy; AllocationView computations and
// tests rely on ledgers being cheap to copy.
func (l *Ledger) Clone() *Ledger {
	c := &Ledger{}
	if len(l.Entries) > 0 {
		c.Entries = make([]SelectionEntry, len(l.Entries))
		copy(c.Entries, l.Entries)
	}
	return c
}
