package ui

import (
	"strings"
	"testing"

	unitview "github.com/axondata/go-unitview"
)

func TestStatusKeyFor(t *testing.T) {
	tests := []struct {
		key  rune
		want unitview.StatusFilter
	}{
		{'1', unitview.StatusRunning},
		{'2', unitview.StatusExited},
		{'3', unitview.StatusDead},
		{'4', unitview.StatusActive},
		{'5', unitview.StatusInactive},
	}

	for _, tt := range tests {
		got, ok := statusKeyFor(tt.key)
		if !ok || got != tt.want {
			t.Errorf("statusKeyFor(%c) = %v,%v, want %v", tt.key, got, ok, tt.want)
		}
	}

	if _, ok := statusKeyFor('9'); ok {
		t.Error("unmapped rune should not resolve")
	}
}

func TestRowCellsMatchHeader(t *testing.T) {
	unit := unitview.ServiceInfo{
		Name:        "sshd.service",
		Description: "OpenSSH server",
		LoadState:   "loaded",
		ActiveState: "active",
		SubState:    "running",
	}

	header := headerCells()
	row := rowCells(unit)
	if len(row) != len(header) {
		t.Fatalf("row has %d cells, header has %d", len(row), len(header))
	}
	if row[0] != "sshd.service" || row[len(row)-1] != "OpenSSH server" {
		t.Errorf("unexpected row %v", row)
	}
}

func TestStatusLine(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		line := statusLine(statusLineState{Loading: true})
		if !strings.Contains(line, "loading") {
			t.Errorf("line %q should mention loading", line)
		}
	})

	t.Run("not loaded", func(t *testing.T) {
		line := statusLine(statusLineState{})
		if !strings.Contains(line, "no listing") {
			t.Errorf("line %q should mention the empty state", line)
		}
	})

	t.Run("counts", func(t *testing.T) {
		line := statusLine(statusLineState{Loaded: true, Visible: 3, Total: 10})
		if !strings.Contains(line, "3/10 units") {
			t.Errorf("line %q should show visible/total", line)
		}
	})

	t.Run("error", func(t *testing.T) {
		line := statusLine(statusLineState{Loaded: true, LastErr: "Unit not found."})
		if !strings.Contains(line, "Unit not found.") {
			t.Errorf("line %q should carry the error text", line)
		}
	})

	t.Run("selected category highlighted", func(t *testing.T) {
		st := statusLineState{Loaded: true}
		st.Filter.Toggle(unitview.StatusDead)
		line := statusLine(st)
		if !strings.Contains(line, "[::r]3:dead[::-]") {
			t.Errorf("line %q should highlight the selected toggle", line)
		}
	})

	t.Run("legend lists every category", func(t *testing.T) {
		line := statusLine(statusLineState{Loaded: true})
		for _, label := range []string{"running", "exited", "dead", "active", "inactive"} {
			if !strings.Contains(line, label) {
				t.Errorf("line %q missing %s toggle", line, label)
			}
		}
	})
}
