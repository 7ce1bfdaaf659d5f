package ge

import "strings"

// MappingEntry is one row of the price API's /mapping table
type MappingEntry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ItemMapping is an immutable snapshot of the item id/name table. The entry
// order is the API's natural order, which makes substring resolution
// deterministic across lookups against the same snapshot.
type ItemMapping struct {
	entries []MappingEntry
	byID    map[int]string
}

// BuildMapping constructs an ItemMapping from the raw mapping list,
// keeping the first occurrence of any duplicated id.
func BuildMapping(list []MappingEntry) *ItemMapping {
	m := &ItemMapping{
		entries: make([]MappingEntry, 0, len(list)),
		byID:    make(map[int]string, len(list)),
	}
	for _, e := range list {
		if _, dup := m.byID[e.ID]; dup {
			continue
		}
		m.entries = append(m.entries, e)
		m.byID[e.ID] = e.Name
	}
	return m
}

// Len returns the number of items in the mapping
func (m *ItemMapping) Len() int {
	return len(m.entries)
}

// NameFor returns the canonical display name for an item id
func (m *ItemMapping) NameFor(id int) (string, bool) {
	name, ok := m.byID[id]
	return name, ok
}

// Resolve maps a free-text item name to its id. It makes two linear passes:
// first exact case-insensitive match, then first entry containing the name
// as a case-insensitive substring. O(n) per lookup, acceptable at a few
// thousand items.
func (m *ItemMapping) Resolve(name string) (int, string, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	if lower == "" {
		return 0, "", false
	}

	for _, e := range m.entries {
		if strings.ToLower(e.Name) == lower {
			return e.ID, e.Name, true
		}
	}

	for _, e := range m.entries {
		if strings.Contains(strings.ToLower(e.Name), lower) {
			return e.ID, e.Name, true
		}
	}

	return 0, "", false
}
