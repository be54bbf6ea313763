package engine

import "strings"

// FilterAll disables a role/status predicate.
const FilterAll = "All"

// Filter returns the subset of the working set matching all three
// predicates. Purely a view concern: the underlying set and its order are
// never touched.
//
// The search term matches case-insensitively as a substring of the surname,
// first name, registration number, or raw member id.
func (e *Engine) Filter(searchTerm, role, status string) []WorkingRecord {
	term := strings.ToLower(strings.TrimSpace(searchTerm))

	out := make([]WorkingRecord, 0, len(e.records))
	for _, r := range e.records {
		if !matchesSearch(r.Member, term) {
			continue
		}
		if role != "" && role != FilterAll && r.Member.Role != role {
			continue
		}
		if status != "" && status != FilterAll && string(r.Status) != status {
			continue
		}
		out = append(out, r)
	}
	return out
}

func matchesSearch(m Member, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(m.Surname), term) ||
		strings.Contains(strings.ToLower(m.FirstName), term) ||
		strings.Contains(strings.ToLower(m.RegistrationNumber), term) ||
		strings.Contains(strings.ToLower(m.ID), term)
}
