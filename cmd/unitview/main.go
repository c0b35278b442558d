// Command unitview lists, filters, and controls systemd service units from
// the terminal. The tui subcommand starts the interactive front end.
package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"

	unitview "github.com/axondata/go-unitview"
	"github.com/axondata/go-unitview/ui"
)

var (
	systemctlPath string
	useSudo       bool

	nameFilter string
	statusName string
	exportPath string
)

func newClient() *unitview.Client {
	return unitview.NewClient(
		unitview.WithSystemctlPath(systemctlPath),
		unitview.WithSudo(useSudo),
	)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "unitview",
		Short:         "Inspect and control systemd service units",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&systemctlPath, "systemctl", unitview.DefaultSystemctlPath, "path to the systemctl binary")
	root.PersistentFlags().BoolVar(&useSudo, "sudo", false, "invoke systemctl through sudo")

	list := &cobra.Command{
		Use:   "list",
		Short: "List service units",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}
	list.Flags().StringVar(&nameFilter, "name", "", "show only units whose name contains this substring")
	list.Flags().StringVar(&statusName, "status", "", "show only one status category (running, exited, dead, active, inactive)")
	list.Flags().StringVar(&exportPath, "export", "", "also write the filtered listing as JSON to this path")
	root.AddCommand(list)

	status := &cobra.Command{
		Use:   "status <unit>",
		Short: "Show one unit's coarse state",
		Args:  cobra.ExactArgs(1),
		RunE:  runStatus,
	}
	root.AddCommand(status)

	for _, action := range []unitview.Action{
		unitview.ActionStart,
		unitview.ActionStop,
		unitview.ActionRestart,
		unitview.ActionReload,
	} {
		root.AddCommand(&cobra.Command{
			Use:   action.String() + " <unit>",
			Short: "Issue systemctl " + action.String() + " and re-list",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				return runControl(cmd, action, args[0])
			},
		})
	}

	tui := &cobra.Command{
		Use:   "tui",
		Short: "Start the interactive service table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			manager := unitview.NewManager(newClient(), unitview.NewStore())
			return ui.New(manager).Run()
		},
	}
	root.AddCommand(tui)

	return root
}

func runList(cmd *cobra.Command, _ []string) error {
	status, err := unitview.ParseStatusFilter(statusName)
	if err != nil {
		return err
	}
	units, err := newClient().ListUnits(cmd.Context())
	if err != nil {
		return err
	}
	filter := unitview.Filter{Name: nameFilter, Status: status}
	visible := filter.Apply(units)

	if exportPath != "" {
		if err := unitview.WriteSnapshot(exportPath, visible); err != nil {
			return err
		}
	}

	table := uitable.New()
	table.MaxColWidth = 60
	table.AddRow("UNIT", "LOAD", "ACTIVE", "SUB", "DESCRIPTION")
	for _, u := range visible {
		table.AddRow(u.Name, u.LoadState, u.ActiveState, u.SubState, u.Description)
	}
	fmt.Fprintln(cmd.OutOrStdout(), table)
	fmt.Fprintf(cmd.OutOrStdout(), "%d/%d units\n", len(visible), len(units))
	return nil
}

func runStatus(cmd *cobra.Command, args []string) error {
	st, err := newClient().Status(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: active=%v running=%v pid=%d\n",
		st.Name, st.Active, st.Running, st.PID)
	return nil
}

// runControl mirrors the front-end flow: dispatch the mutation, then trust
// only a fresh listing for the resulting state.
func runControl(cmd *cobra.Command, action unitview.Action, name string) error {
	client := newClient()
	manager := unitview.NewManager(client, unitview.NewStore())
	if err := manager.Apply(cmd.Context(), action, name); err != nil {
		return err
	}
	units, _ := manager.Store.Current()
	for _, u := range units {
		if u.Name == name {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %s/%s\n", u.Name, u.ActiveState, u.SubState)
			return nil
		}
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: not present in listing\n", name)
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "unitview:", err)
		os.Exit(1)
	}
}
