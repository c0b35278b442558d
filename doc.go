// Package unitview inventories and controls systemd service units by
// invoking systemctl and normalizing its machine-readable output.
//
// The core functionality centers around the Client type, which lists all
// service units and dispatches start/stop/restart/reload operations:
//
//	client := unitview.NewClient()
//
//	units, err := client.ListUnits(context.Background())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	err = client.Restart(context.Background(), "nginx.service")
//
// The listing decoder tolerates the schema drift systemctl has shown across
// versions: field names are probed under several naming conventions, a bare
// array and an object-wrapped "units" collection are both accepted, and a
// malformed row never aborts the batch.
//
// # Store, Filter, and Manager
//
// Store holds the latest complete snapshot behind an atomic handle; every
// refresh replaces it wholesale. Filter evaluates a name substring plus at
// most one status category over a snapshot without touching I/O. Manager
// ties the two to a Client: it serializes refreshes, re-lists after each
// successful mutation, and records loading/error state for display.
//
//	store := unitview.NewStore()
//	manager := unitview.NewManager(client, store)
//	_ = manager.Refresh(ctx)
//
//	filter := unitview.Filter{Name: "ssh", Status: unitview.StatusRunning}
//	units, _ := store.Current()
//	visible := filter.Apply(units)
//
// # Design Philosophy
//
// This library prioritizes:
//
//   - One fixed external interface: systemctl invoked with verbatim
//     argument lists, no shell interpretation
//   - Whole-snapshot replacement, never incremental patching
//   - Tolerant decoding that drops malformed rows instead of failing
//   - Errors as descriptive values; nothing here terminates the process
//
// Mutations intentionally report nothing beyond success: systemd applies
// state changes asynchronously, so the follow-up listing is the only
// trustworthy observation of the new state.
package unitview
