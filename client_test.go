package unitview

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// fakeRunner scripts invocation results by systemctl verb and records
// every argument list it receives.
type fakeRunner struct {
	// results maps the first argument (the verb) to a canned result
	results map[string]ExecResult
	// err, when set, is returned for every invocation (spawn failure)
	err error

	calls [][]string
}

func (f *fakeRunner) Run(_ context.Context, args ...string) (ExecResult, error) {
	f.calls = append(f.calls, args)
	if f.err != nil {
		return ExecResult{}, f.err
	}
	if len(args) > 0 {
		if res, ok := f.results[args[0]]; ok {
			return res, nil
		}
	}
	return ExecResult{ExitSuccess: true}, nil
}

func success(stdout string) ExecResult {
	return ExecResult{ExitSuccess: true, Stdout: []byte(stdout)}
}

func failure(stderr string) ExecResult {
	return ExecResult{Stderr: []byte(stderr)}
}

func TestClientListUnitsArgs(t *testing.T) {
	runner := &fakeRunner{results: map[string]ExecResult{"list-units": success(`[]`)}}
	client := NewClient(WithRunner(runner))

	if _, err := client.ListUnits(context.Background()); err != nil {
		t.Fatal(err)
	}

	want := []string{"list-units", "--type=service", "--all", "--no-pager", "--output=json"}
	if len(runner.calls) != 1 {
		t.Fatalf("got %d invocations, want 1", len(runner.calls))
	}
	got := runner.calls[0]
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClientListUnitsDecodes(t *testing.T) {
	runner := &fakeRunner{results: map[string]ExecResult{
		"list-units": success(`[{"unit":"a.service","active":"active","sub":"running"}]`),
	}}
	client := NewClient(WithRunner(runner))

	units, err := client.ListUnits(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(units) != 1 {
		t.Fatalf("got %d units, want 1", len(units))
	}
	u := units[0]
	if u.Name != "a.service" || u.ActiveState != "active" || u.SubState != "running" {
		t.Errorf("unexpected record %+v", u)
	}
	if u.Description != "" || len(u.FollowedBy) != 0 {
		t.Errorf("absent fields should default to empty, got %+v", u)
	}
}

func TestClientListUnitsErrors(t *testing.T) {
	t.Run("spawn failure", func(t *testing.T) {
		runner := &fakeRunner{err: errors.New("exec: \"systemctl\": executable file not found in $PATH")}
		client := NewClient(WithRunner(runner))

		_, err := client.ListUnits(context.Background())
		if err == nil {
			t.Fatal("expected error")
		}
		var opErr *OpError
		if !errors.As(err, &opErr) || opErr.Action != ActionList {
			t.Errorf("want OpError for list-units, got %v", err)
		}
	})

	t.Run("exit failure", func(t *testing.T) {
		runner := &fakeRunner{results: map[string]ExecResult{
			"list-units": failure("Failed to connect to bus\n"),
		}}
		client := NewClient(WithRunner(runner))

		_, err := client.ListUnits(context.Background())
		var exitErr *ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("want ExitError, got %v", err)
		}
		if exitErr.Stderr != "Failed to connect to bus" {
			t.Errorf("Stderr = %q", exitErr.Stderr)
		}
	})

	t.Run("decode failure", func(t *testing.T) {
		runner := &fakeRunner{results: map[string]ExecResult{
			"list-units": success("UNIT LOAD ACTIVE SUB DESCRIPTION"),
		}}
		client := NewClient(WithRunner(runner))

		_, err := client.ListUnits(context.Background())
		if !errors.Is(err, ErrDecode) {
			t.Errorf("want ErrDecode, got %v", err)
		}
	})
}

func TestClientMutations(t *testing.T) {
	for _, verb := range []string{"start", "stop", "restart", "reload"} {
		t.Run(verb, func(t *testing.T) {
			runner := &fakeRunner{}
			client := NewClient(WithRunner(runner))

			var err error
			ctx := context.Background()
			switch verb {
			case "start":
				err = client.Start(ctx, "nginx.service")
			case "stop":
				err = client.Stop(ctx, "nginx.service")
			case "restart":
				err = client.Restart(ctx, "nginx.service")
			case "reload":
				err = client.Reload(ctx, "nginx.service")
			}
			if err != nil {
				t.Fatal(err)
			}

			if len(runner.calls) != 1 {
				t.Fatalf("got %d invocations, want 1", len(runner.calls))
			}
			got := runner.calls[0]
			if len(got) != 2 || got[0] != verb || got[1] != "nginx.service" {
				t.Errorf("args = %v, want [%s nginx.service]", got, verb)
			}
		})
	}
}

func TestClientMutationExitFailure(t *testing.T) {
	runner := &fakeRunner{results: map[string]ExecResult{
		"start": failure("Unit not found.\n"),
	}}
	client := NewClient(WithRunner(runner))

	err := client.Start(context.Background(), "ghost.service")
	if err == nil {
		t.Fatal("expected error")
	}

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("want ExitError, got %T", err)
	}
	if exitErr.Stderr != "Unit not found." {
		t.Errorf("Stderr = %q, want the captured text", exitErr.Stderr)
	}
	if !strings.Contains(err.Error(), "Unit not found.") {
		t.Errorf("error text %q should carry the stderr", err.Error())
	}
}

func TestClientMutationExitFailureEmptyStderr(t *testing.T) {
	runner := &fakeRunner{results: map[string]ExecResult{"stop": failure("")}}
	client := NewClient(WithRunner(runner))

	err := client.Stop(context.Background(), "nginx.service")
	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("want ExitError, got %v", err)
	}
	if exitErr.Error() == "" {
		t.Error("an empty stderr must still produce a descriptive message")
	}
}

func TestClientStatus(t *testing.T) {
	runner := &fakeRunner{results: map[string]ExecResult{
		"show": success("ActiveState=active\nSubState=running\nMainPID=42\n"),
	}}
	client := NewClient(WithRunner(runner))

	st, err := client.Status(context.Background(), "sshd.service")
	if err != nil {
		t.Fatal(err)
	}
	if st.Name != "sshd.service" || !st.Active || !st.Running || st.PID != 42 {
		t.Errorf("unexpected status %+v", st)
	}

	want := []string{"show", "sshd.service", "--property=ActiveState,SubState,MainPID", "--no-pager"}
	got := runner.calls[0]
	if len(got) != len(want) {
		t.Fatalf("args = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("args[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClientOptions(t *testing.T) {
	client := NewClient(WithSystemctlPath("/usr/local/bin/systemctl"), WithSudo(true))

	r, ok := client.Runner.(*SystemctlRunner)
	if !ok {
		t.Fatalf("default runner is %T", client.Runner)
	}
	if r.Path != "/usr/local/bin/systemctl" {
		t.Errorf("Path = %q", r.Path)
	}
	if !r.UseSudo {
		t.Error("UseSudo should be set")
	}
}

// End-to-end over the fake: list, then filter the snapshot.
func TestListAndFilterEndToEnd(t *testing.T) {
	runner := &fakeRunner{results: map[string]ExecResult{
		"list-units": success(`[{"unit":"a.service","active":"active","sub":"running"}]`),
	}}
	client := NewClient(WithRunner(runner))

	units, err := client.ListUnits(context.Background())
	if err != nil {
		t.Fatal(err)
	}

	matching := Filter{Name: "a", Status: StatusRunning}.Apply(units)
	if len(matching) != 1 || matching[0].Name != "a.service" {
		t.Errorf("filter {a, running} = %v, want the single record", matching)
	}

	empty := Filter{Name: "b"}.Apply(units)
	if len(empty) != 0 {
		t.Errorf("filter {b, none} = %v, want empty", empty)
	}
}
