package unitview

import (
	"context"
	"strings"
)

// Client lists and controls systemd service units through systemctl.
//
// Mutations report nothing beyond success. systemd applies state changes
// asynchronously, so callers re-run ListUnits afterwards instead of
// trusting any partial state update.
type Client struct {
	// Runner executes systemctl invocations. Defaults to a SystemctlRunner.
	Runner Runner
}

// ClientOption configures a Client
type ClientOption func(*Client)

// WithRunner replaces the process runner, e.g. with a fake in tests.
// It should precede options that configure the default runner.
func WithRunner(r Runner) ClientOption {
	return func(c *Client) {
		c.Runner = r
	}
}

// WithSystemctlPath sets the systemctl binary path on the default runner
func WithSystemctlPath(path string) ClientOption {
	return func(c *Client) {
		if r, ok := c.Runner.(*SystemctlRunner); ok && path != "" {
			r.Path = path
		}
	}
}

// WithSudo configures sudo usage on the default runner
func WithSudo(use bool) ClientOption {
	return func(c *Client) {
		if r, ok := c.Runner.(*SystemctlRunner); ok {
			r.UseSudo = use
		}
	}
}

// NewClient creates a new Client and applies any provided options.
func NewClient(opts ...ClientOption) *Client {
	c := &Client{Runner: NewSystemctlRunner()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListUnits runs the machine-readable listing of all service units and
// decodes it into a snapshot.
func (c *Client) ListUnits(ctx context.Context) ([]ServiceInfo, error) {
	res, err := c.Runner.Run(ctx, listUnitsArgs...)
	if err != nil {
		return nil, &OpError{Action: ActionList, Err: err}
	}
	if !res.ExitSuccess {
		return nil, &OpError{Action: ActionList, Err: exitError(res)}
	}
	units, err := DecodeUnitList(res.Stdout)
	if err != nil {
		return nil, &OpError{Action: ActionList, Err: err}
	}
	return units, nil
}

// Status queries one unit's coarse state. It is a lighter-weight poll than
// a full listing; the refresh flow does not depend on it.
func (c *Client) Status(ctx context.Context, name string) (ServiceStatus, error) {
	res, err := c.Runner.Run(ctx, actionShowStr, name, "--property="+showProperties, "--no-pager")
	if err != nil {
		return ServiceStatus{}, &OpError{Action: ActionShow, Unit: name, Err: err}
	}
	if !res.ExitSuccess {
		return ServiceStatus{}, &OpError{Action: ActionShow, Unit: name, Err: exitError(res)}
	}
	return DecodeShowOutput(name, res.Stdout), nil
}

// Start starts the named unit
func (c *Client) Start(ctx context.Context, name string) error {
	return c.control(ctx, ActionStart, name)
}

// Stop stops the named unit
func (c *Client) Stop(ctx context.Context, name string) error {
	return c.control(ctx, ActionStop, name)
}

// Restart restarts the named unit
func (c *Client) Restart(ctx context.Context, name string) error {
	return c.control(ctx, ActionRestart, name)
}

// Reload asks the named unit to reload its configuration
func (c *Client) Reload(ctx context.Context, name string) error {
	return c.control(ctx, ActionReload, name)
}

// control issues a single-unit mutation verb and translates a non-zero
// exit into a failure carrying the captured stderr.
func (c *Client) control(ctx context.Context, action Action, name string) error {
	res, err := c.Runner.Run(ctx, action.String(), name)
	if err != nil {
		return &OpError{Action: action, Unit: name, Err: err}
	}
	if !res.ExitSuccess {
		return &OpError{Action: action, Unit: name, Err: exitError(res)}
	}
	return nil
}

func exitError(res ExecResult) *ExitError {
	return &ExitError{Stderr: strings.TrimSpace(string(res.Stderr))}
}
