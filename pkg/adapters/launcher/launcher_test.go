package launcher

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarin/deskpilot/internal/logging"
	"github.com/okarin/deskpilot/pkg/domain"
)

func TestLaunchKnownApp(t *testing.T) {
	var spawned [][]string
	table := New(
		WithLogger(logging.NewNop()),
		WithStarter(func(argv []string) error {
			spawned = append(spawned, argv)
			return nil
		}),
	)

	require.NoError(t, table.Launch("Chrome"))
	require.Len(t, spawned, 1)
	// Name lookup is case-insensitive and resolved through the table,
	// not passed through as-is.
	assert.NotEqual(t, []string{"Chrome"}, spawned[0])
}

func TestLaunchFallbackTreatsNameAsExecutable(t *testing.T) {
	var spawned [][]string
	table := New(
		WithLogger(logging.NewNop()),
		WithStarter(func(argv []string) error {
			spawned = append(spawned, argv)
			return nil
		}),
	)

	require.NoError(t, table.Launch("some-custom-tool"))
	require.Len(t, spawned, 1)
	assert.Contains(t, spawned[0], "some-custom-tool")
}

func TestLaunchConfigOverlayWins(t *testing.T) {
	var spawned [][]string
	table := New(
		WithLogger(logging.NewNop()),
		WithApps(map[string][]string{"Chrome": {"chromium", "--incognito"}}),
		WithStarter(func(argv []string) error {
			spawned = append(spawned, argv)
			return nil
		}),
	)

	require.NoError(t, table.Launch("chrome"))
	require.Len(t, spawned, 1)
	assert.Equal(t, []string{"chromium", "--incognito"}, spawned[0])
}

func TestLaunchSpawnFailure(t *testing.T) {
	table := New(
		WithLogger(logging.NewNop()),
		WithStarter(func([]string) error { return errors.New("exec format error") }),
	)

	err := table.Launch("ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAppNotFound)
	assert.Contains(t, err.Error(), "exec format error")
}

func TestLaunchEmptyName(t *testing.T) {
	table := New(WithLogger(logging.NewNop()), WithStarter(func([]string) error { return nil }))
	assert.ErrorIs(t, table.Launch("   "), domain.ErrAppNotFound)
}
