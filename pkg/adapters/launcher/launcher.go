// Package launcher resolves friendly application names to launch commands
// and spawns them, implementing ports.Launcher.
package launcher

import (
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/okarin/deskpilot/pkg/domain"
)

// Table maps lower-cased application names to argv launch commands for the
// current OS. Unknown names fall back to treating the name itself as an
// executable.
type Table struct {
	apps   map[string][]string
	logger *slog.Logger
	start  func(argv []string) error
}

// Option configures a Table.
type Option func(*Table)

// WithApps overlays extra name→argv entries on the built-in table. Entries
// win over the defaults for the same name.
func WithApps(apps map[string][]string) Option {
	return func(t *Table) {
		for name, argv := range apps {
			t.apps[strings.ToLower(name)] = argv
		}
	}
}

// WithLogger sets the launcher logger.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Table) { t.logger = logger }
}

// WithStarter replaces the process spawner, for tests.
func WithStarter(start func(argv []string) error) Option {
	return func(t *Table) { t.start = start }
}

// New builds a Table seeded with the per-OS defaults.
func New(opts ...Option) *Table {
	t := &Table{
		apps:   defaultApps(),
		logger: slog.Default(),
		start:  startProcess,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Launch resolves the name and spawns the command without waiting for it.
// A spawn failure is reported as ErrAppNotFound with the underlying cause.
func (t *Table) Launch(name string) error {
	key := strings.ToLower(strings.TrimSpace(name))
	if key == "" {
		return fmt.Errorf("%w: empty name", domain.ErrAppNotFound)
	}

	argv, ok := t.apps[key]
	if !ok {
		argv = fallbackCommand(key)
	}

	t.logger.Debug("launching application", "name", key, "argv", argv)
	if err := t.start(argv); err != nil {
		return fmt.Errorf("%w: %q: %v", domain.ErrAppNotFound, name, err)
	}
	return nil
}

// startProcess spawns the command detached: the application outlives the
// request that opened it.
func startProcess(argv []string) error {
	cmd := exec.Command(argv[0], argv[1:]...)
	if err := cmd.Start(); err != nil {
		return err
	}
	return cmd.Process.Release()
}
