package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"menuboard/internal/testutil"
	"menuboard/pkg/utils"
)

func run(t *testing.T, open func() (*deps, error), args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(open)
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func sqliteDeps(t *testing.T) func() (*deps, error) {
	d := newDeps(testutil.NewTestDB(t), zap.NewNop())
	return func() (*deps, error) { return d, nil }
}

func TestWeekCommand(t *testing.T) {
	out, err := run(t, nil, "week", "2024-03-17")
	require.NoError(t, err)
	require.Equal(t, "2024-03-11\tWeek of 11/03/2024 to 15/03/2024\n", out)

	_, err = run(t, nil, "week", "17/03/2024")
	require.ErrorIs(t, err, utils.ErrInvalidWeek)
}

func TestUnitCommands(t *testing.T) {
	open := sqliteDeps(t)

	out, err := run(t, open, "unit", "create", "North", "--plan", "premium")
	require.NoError(t, err)
	require.Contains(t, out, `created unit "North" on the premium plan`)

	out, err = run(t, open, "unit", "create", "North")
	require.NoError(t, err)
	require.Contains(t, out, "already exists")

	_, err = run(t, open, "unit", "plan", "North", "free")
	require.NoError(t, err)

	out, err = run(t, open, "unit", "list")
	require.NoError(t, err)
	require.Contains(t, out, "North")
	require.Contains(t, out, "free")

	_, err = run(t, open, "unit", "plan", "North", "gold")
	require.ErrorIs(t, err, utils.ErrInvalidPlan)
}

func TestAccountCreateBootstrapsAdmin(t *testing.T) {
	open := sqliteDeps(t)

	out, err := run(t, open, "account", "create",
		"--username", "root", "--password", "secret-pass", "--role", "admin", "--unit", "HQ")
	require.NoError(t, err)
	require.Contains(t, out, `created admin "root"`)

	_, err = run(t, open, "account", "create",
		"--username", "root", "--password", "secret-pass", "--unit", "HQ")
	require.ErrorIs(t, err, utils.ErrUsernameAlreadyExists)
}
