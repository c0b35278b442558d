// Package ui provides the terminal front end: a filterable table of
// service units with start/stop/restart/reload keybindings, backed by the
// unitview Manager and Store.
package ui

import (
	"context"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	unitview "github.com/axondata/go-unitview"
)

var (
	uiBorderColor = tcell.ColorGray
	uiHeaderColor = tcell.ColorYellow
)

// View owns the tview widget tree and the filter state. All systemctl
// invocations run off the UI goroutine; results land back through
// QueueUpdateDraw so the interface stays responsive while an invocation
// blocks.
type View struct {
	manager *unitview.Manager
	filter  unitview.Filter

	app    *tview.Application
	table  *tview.Table
	input  *tview.InputField
	status *tview.TextView

	// visible mirrors the rows currently in the table, in table order
	visible []unitview.ServiceInfo
}

// New builds a View over the given manager.
func New(manager *unitview.Manager) *View {
	v := &View{
		manager: manager,
		app:     tview.NewApplication(),
	}

	v.table = tview.NewTable().
		SetSelectable(true, false).
		SetFixed(1, 0)
	v.table.SetBorder(true).
		SetBorderColor(uiBorderColor).
		SetTitle(" service units ")

	v.input = tview.NewInputField().
		SetLabel("Filter: ").
		SetChangedFunc(func(text string) {
			v.filter.Name = text
			v.redraw()
		})

	v.status = tview.NewTextView().SetDynamicColors(true)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(v.input, 1, 0, false).
		AddItem(v.status, 2, 0, false).
		AddItem(v.table, 0, 1, true)

	v.app.SetRoot(flex, true)
	v.app.SetInputCapture(v.handleKey)
	return v
}

// Run triggers the initial refresh and enters the event loop until quit.
func (v *View) Run() error {
	v.redraw()
	v.refreshAsync()
	return v.app.Run()
}

func (v *View) handleKey(event *tcell.EventKey) *tcell.EventKey {
	// The filter input keeps normal editing keys; Enter/Escape hand focus
	// back to the table.
	if v.app.GetFocus() == v.input {
		if event.Key() == tcell.KeyEnter || event.Key() == tcell.KeyEscape {
			v.app.SetFocus(v.table)
			return nil
		}
		return event
	}

	if event.Key() != tcell.KeyRune {
		return event
	}

	switch r := event.Rune(); r {
	case '/':
		v.app.SetFocus(v.input)
		return nil
	case 'q':
		v.app.Stop()
		return nil
	case 'R':
		v.refreshAsync()
		return nil
	case 's':
		v.applyAsync(unitview.ActionStart)
		return nil
	case 'x':
		v.applyAsync(unitview.ActionStop)
		return nil
	case 'r':
		v.applyAsync(unitview.ActionRestart)
		return nil
	case 'l':
		v.applyAsync(unitview.ActionReload)
		return nil
	default:
		if status, ok := statusKeyFor(r); ok {
			v.filter.Toggle(status)
			v.redraw()
			return nil
		}
	}
	return event
}

// selectedUnit returns the unit under the cursor, if any.
func (v *View) selectedUnit() (unitview.ServiceInfo, bool) {
	row, _ := v.table.GetSelection()
	idx := row - 1 // header row
	if idx < 0 || idx >= len(v.visible) {
		return unitview.ServiceInfo{}, false
	}
	return v.visible[idx], true
}

// refreshAsync runs one listing off the UI goroutine. Overlapping requests
// are rejected by the manager, so mashing R cannot race two listings.
func (v *View) refreshAsync() {
	v.setStatusLine()
	go func() {
		_ = v.manager.Refresh(context.Background())
		v.app.QueueUpdateDraw(v.redraw)
	}()
}

// applyAsync dispatches a mutation for the selected unit and re-lists.
func (v *View) applyAsync(action unitview.Action) {
	unit, ok := v.selectedUnit()
	if !ok {
		return
	}
	go func() {
		_ = v.manager.Apply(context.Background(), action, unit.Name)
		v.app.QueueUpdateDraw(v.redraw)
	}()
}

// redraw rebuilds the table and status line from the current snapshot and
// filter. It must run on the UI goroutine.
func (v *View) redraw() {
	units, _ := v.manager.Store.Current()
	v.visible = v.filter.Apply(units)

	v.table.Clear()
	for col, text := range headerCells() {
		v.table.SetCell(0, col, tview.NewTableCell(text).
			SetTextColor(uiHeaderColor).
			SetSelectable(false))
	}
	for i, unit := range v.visible {
		for col, text := range rowCells(unit) {
			cell := tview.NewTableCell(text)
			if col == len(headerCells())-1 {
				cell.SetExpansion(1)
			}
			v.table.SetCell(i+1, col, cell)
		}
	}
	v.setStatusLine()
}

func (v *View) setStatusLine() {
	units, loaded := v.manager.Store.Current()
	v.status.SetText(statusLine(statusLineState{
		Loaded:  loaded,
		Loading: v.manager.Store.Loading(),
		LastErr: v.manager.Store.LastError(),
		Visible: len(v.visible),
		Total:   len(units),
		Filter:  v.filter,
	}))
}
