package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/quanta"
	"github.com/aretw0/quanta/pkg/scheduler"
	"github.com/aretw0/quanta/pkg/units"
)

// resetFlags restores every flag of cmd and its children to its default so
// each run starts from a clean command tree.
func resetFlags(t *testing.T, cmd *cobra.Command) {
	t.Helper()
	reset := func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			require.NoError(t, sv.Replace(nil))
		} else {
			require.NoError(t, f.Value.Set(f.DefValue))
		}
		f.Changed = false
	}
	cmd.PersistentFlags().VisitAll(reset)
	cmd.Flags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(t, c)
	}
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(t, rootCmd)
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestTripCommand(t *testing.T) {
	out, err := run(t, "trip", "--km", "100", "--hours", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "27.7778 m/s")
	assert.Contains(t, out, "100.00 km/h")
	assert.Contains(t, out, "62.14 mph")
}

func TestTripCommandAddsFlags(t *testing.T) {
	out, err := run(t, "trip", "--miles", "30", "--minutes", "30")
	require.NoError(t, err)
	assert.Contains(t, out, "60.00 mph")
}

func TestTripCommandRejectsZeroDuration(t *testing.T) {
	_, err := run(t, "trip", "--km", "10")
	assert.ErrorContains(t, err, "duration must be positive")
}

func TestTableCommand(t *testing.T) {
	out, err := run(t, "table")
	require.NoError(t, err)
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "nautical mile")
	assert.Contains(t, out, "kg·m·s⁻²")
}

func TestTableCommandJSON(t *testing.T) {
	out, err := run(t, "table", "--json")
	require.NoError(t, err)

	var entries []struct {
		Name  string  `json:"name"`
		Value float64 `json:"value"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &entries))
	require.NotEmpty(t, entries)

	for _, e := range entries {
		if e.Name == "hour" {
			assert.Equal(t, 3600.0, e.Value)
			return
		}
	}
	t.Fatal("hour missing from table")
}

func TestRemindCommand(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "r.yaml")
	require.NoError(t, os.WriteFile(path, []byte("reminders:\n  - label: from-file\n    after: { seconds: 0.01 }\n"), 0o644))

	out, err := run(t, "remind", "--file", path, "--label", "from-flag", "--seconds", "0.02")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasSuffix(lines[0], "from-file"))
	assert.True(t, strings.HasSuffix(lines[1], "from-flag"))
}

func TestRemindCommandNeedsWork(t *testing.T) {
	_, err := run(t, "remind")
	assert.ErrorContains(t, err, "nothing to schedule")
}

func TestVersionCommand(t *testing.T) {
	out, err := run(t, "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "quanta version "))
}

func TestFlagsDoNotLeakBetweenRuns(t *testing.T) {
	_, err := run(t, "table", "--json")
	require.NoError(t, err)
	out, err := run(t, "table")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"), "second run should render the text table")

	_, err = run(t, "trip", "--km", "100", "--hours", "1")
	require.NoError(t, err)
	_, err = run(t, "trip", "--km", "100")
	assert.ErrorContains(t, err, "duration must be positive")
}

func TestRunRemindersReportsConcurrentDrain(t *testing.T) {
	s := quanta.NewScheduler()
	_, err := s.Add(units.Hours(1), "later")
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- s.Drain(ctx, func(scheduler.Notification) {}) }()
	require.Eventually(t, func() bool {
		return s.State().(scheduler.SchedulerState).Draining
	}, time.Second, time.Millisecond)

	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})
	err = runReminders(ctx, cmd, s)
	assert.ErrorIs(t, err, scheduler.ErrAlreadyDraining)

	cancel()
	<-done
}

func TestRemindCommandBuffered(t *testing.T) {
	out, err := run(t, "remind", "--label", "buffered", "--seconds", "0.01", "--buffer", "4")
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "buffered"))
}
