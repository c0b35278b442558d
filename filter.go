package unitview

import (
	"fmt"
	"strings"
)

// StatusFilter selects at most one status category.
type StatusFilter int

const (
	// StatusAny matches every record (no category selected)
	StatusAny StatusFilter = iota
	// StatusRunning matches SubState "running"
	StatusRunning
	// StatusExited matches SubState "exited"
	StatusExited
	// StatusDead matches SubState "dead"
	StatusDead
	// StatusActive matches ActiveState "active"
	StatusActive
	// StatusInactive matches ActiveState "inactive"
	StatusInactive
)

// String returns the category label shown in front ends.
func (f StatusFilter) String() string {
	switch f {
	case StatusRunning:
		return "running"
	case StatusExited:
		return "exited"
	case StatusDead:
		return "dead"
	case StatusActive:
		return "active"
	case StatusInactive:
		return "inactive"
	default:
		return "any"
	}
}

// ParseStatusFilter maps a category label to its StatusFilter. The empty
// string selects no category.
func ParseStatusFilter(s string) (StatusFilter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "any":
		return StatusAny, nil
	case "running":
		return StatusRunning, nil
	case "exited":
		return StatusExited, nil
	case "dead":
		return StatusDead, nil
	case "active":
		return StatusActive, nil
	case "inactive":
		return StatusInactive, nil
	default:
		return StatusAny, fmt.Errorf("unknown status filter %q", s)
	}
}

// Filter is the compound predicate over a snapshot: a free-text name
// substring and at most one status category. The zero value matches
// everything.
type Filter struct {
	// Name is matched case-insensitively as a substring of the unit name,
	// after trimming. Empty matches all.
	Name string

	// Status is the selected category, StatusAny for none
	Status StatusFilter
}

// Toggle selects a status category, or clears the selection when the
// category is already selected.
func (f *Filter) Toggle(status StatusFilter) {
	if f.Status == status {
		f.Status = StatusAny
	} else {
		f.Status = status
	}
}

// Matches reports whether one record passes both filter clauses.
func (f Filter) Matches(info ServiceInfo) bool {
	needle := strings.ToLower(strings.TrimSpace(f.Name))
	if needle != "" && !strings.Contains(strings.ToLower(info.Name), needle) {
		return false
	}
	switch f.Status {
	case StatusRunning:
		return strings.EqualFold(info.SubState, "running")
	case StatusExited:
		return strings.EqualFold(info.SubState, "exited")
	case StatusDead:
		return strings.EqualFold(info.SubState, "dead")
	case StatusActive:
		return strings.EqualFold(info.ActiveState, "active")
	case StatusInactive:
		return strings.EqualFold(info.ActiveState, "inactive")
	default:
		return true
	}
}

// Apply returns the subset of units passing the filter, preserving the
// snapshot's original order. It performs no I/O and never modifies its
// input.
func (f Filter) Apply(units []ServiceInfo) []ServiceInfo {
	out := make([]ServiceInfo, 0, len(units))
	for _, u := range units {
		if f.Matches(u) {
			out = append(out, u)
		}
	}
	return out
}
