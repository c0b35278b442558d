package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	unitview "github.com/axondata/go-unitview"
)

// statusToggles maps number keys to status categories, mirroring the
// toggle buttons of the graphical layout. Pressing the key of the selected
// category clears it.
var statusToggles = []struct {
	Key    rune
	Status unitview.StatusFilter
}{
	{'1', unitview.StatusRunning},
	{'2', unitview.StatusExited},
	{'3', unitview.StatusDead},
	{'4', unitview.StatusActive},
	{'5', unitview.StatusInactive},
}

func statusKeyFor(r rune) (unitview.StatusFilter, bool) {
	for _, t := range statusToggles {
		if t.Key == r {
			return t.Status, true
		}
	}
	return unitview.StatusAny, false
}

func headerCells() []string {
	return []string{"UNIT", "LOAD", "ACTIVE", "SUB", "DESCRIPTION"}
}

func rowCells(unit unitview.ServiceInfo) []string {
	return []string{
		unit.Name,
		unit.LoadState,
		unit.ActiveState,
		unit.SubState,
		unit.Description,
	}
}

// statusLineState is everything the status line renders from.
type statusLineState struct {
	Loaded  bool
	Loading bool
	LastErr string
	Visible int
	Total   int
	Filter  unitview.Filter
}

// statusLine renders the two-line footer: counts plus toggle legend, and
// the last error if any.
func statusLine(st statusLineState) string {
	var b strings.Builder

	switch {
	case st.Loading:
		b.WriteString("loading services... ")
	case !st.Loaded:
		b.WriteString("no listing loaded yet ")
	default:
		fmt.Fprintf(&b, "%d/%d units ", st.Visible, st.Total)
	}

	var legend []string
	for _, t := range statusToggles {
		label := fmt.Sprintf("%c:%s", t.Key, t.Status)
		if st.Filter.Status == t.Status {
			label = "[::r]" + label + "[::-]"
		}
		legend = append(legend, label)
	}
	b.WriteString("| ")
	b.WriteString(strings.Join(legend, " "))
	b.WriteString(" | /:filter R:refresh s:start x:stop r:restart l:reload q:quit")

	if st.LastErr != "" {
		// Escape keeps bracketed text in error messages from being read
		// as color tags.
		b.WriteString("\n[red]")
		b.WriteString(tview.Escape(st.LastErr))
		b.WriteString("[-]")
	}
	return b.String()
}
