package unitview

import "time"

// Action identifies a systemctl operation issued by this package.
type Action int

const (
	// ActionUnknown represents an unrecognized action
	ActionUnknown Action = iota
	// ActionList lists all service units
	ActionList
	// ActionShow queries the properties of a single unit
	ActionShow
	// ActionStart starts a unit
	ActionStart
	// ActionStop stops a unit
	ActionStop
	// ActionRestart restarts a unit
	ActionRestart
	// ActionReload asks a unit to reload its configuration
	ActionReload
)

// Action string constants
const (
	actionUnknownStr = "unknown"
	actionListStr    = "list-units"
	actionShowStr    = "show"
	actionStartStr   = "start"
	actionStopStr    = "stop"
	actionRestartStr = "restart"
	actionReloadStr  = "reload"
)

// String returns the systemctl verb for this action.
func (a Action) String() string {
	switch a {
	case ActionList:
		return actionListStr
	case ActionShow:
		return actionShowStr
	case ActionStart:
		return actionStartStr
	case ActionStop:
		return actionStopStr
	case ActionRestart:
		return actionRestartStr
	case ActionReload:
		return actionReloadStr
	default:
		return actionUnknownStr
	}
}

// Binary paths with defaults that can be overridden
const (
	// DefaultSystemctlPath is the default path to the systemctl binary
	DefaultSystemctlPath = "systemctl"

	// DefaultSudoPath is the default path to the sudo binary
	DefaultSudoPath = "sudo"
)

// listUnitsArgs is the verbatim argument list for the machine-readable
// listing. The arguments are passed directly to the binary; there is no
// shell expansion anywhere in this package.
var listUnitsArgs = []string{"list-units", "--type=service", "--all", "--no-pager", "--output=json"}

// showProperties limits the single-unit query to the keys
// DecodeShowOutput understands.
const showProperties = "ActiveState,SubState,MainPID"

// DefaultWatchDebounce coalesces bursts of unit-file changes into a single
// watch event.
const DefaultWatchDebounce = 250 * time.Millisecond

// DefaultUnitDirs are the directories systemd loads service units from,
// in the order WatchUnitFiles registers them.
var DefaultUnitDirs = []string{
	"/etc/systemd/system",
	"/run/systemd/system",
	"/usr/lib/systemd/system",
}
