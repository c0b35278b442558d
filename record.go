package unitview

// ServiceInfo is one service unit from a listing snapshot. The state fields
// are carried verbatim from systemd and compared as opaque tags; they are
// not validated against a fixed enum.
type ServiceInfo struct {
	// Name is the unit name, e.g. "nginx.service". Never empty: rows
	// without a resolvable name are dropped during decoding.
	Name string `json:"name"`

	// Description is the unit's free-text label, possibly empty
	Description string `json:"description"`

	// LoadState reports whether the unit file was loaded, e.g. "loaded"
	LoadState string `json:"load_state"`

	// ActiveState is the coarse lifecycle state, e.g. "active", "inactive"
	ActiveState string `json:"active_state"`

	// SubState is the fine-grained state, e.g. "running", "exited", "dead"
	SubState string `json:"sub_state"`

	// UnitFileState reports the enablement state, e.g. "enabled"
	UnitFileState string `json:"unit_file_state"`

	// FollowedBy lists units following this one's state, possibly empty
	FollowedBy []string `json:"followed_by"`
}

// IsActive reports whether the unit's coarse state is "active".
func (s ServiceInfo) IsActive() bool {
	return s.ActiveState == "active"
}

// IsRunning reports whether the unit's fine-grained state is "running".
func (s ServiceInfo) IsRunning() bool {
	return s.SubState == "running"
}

// ServiceStatus is the result of the single-unit show query. It is a
// lighter-weight poll than a full listing and is decoded independently of
// the listing decoder.
type ServiceStatus struct {
	// Name is the unit the query was issued for
	Name string `json:"name"`

	// Active is true when ActiveState equals "active"
	Active bool `json:"active"`

	// Running is true when SubState equals "running"
	Running bool `json:"running"`

	// PID is the unit's main process ID, 0 when absent or not running
	PID int `json:"pid"`
}
