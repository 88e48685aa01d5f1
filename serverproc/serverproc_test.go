package serverproc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDisablesTerminalUI(t *testing.T) {
	cfg := NewConfig("/usr/local/bin/swarmgrid")
	assert.Equal(t, []string{DisableTUIFlag}, cfg.Args)
	assert.Equal(t, DefaultWarmup, cfg.Warmup)
}

func TestStartRequiresCommand(t *testing.T) {
	_, err := Start(Config{})
	require.Error(t, err)
}

func TestStartFailsForMissingExecutable(t *testing.T) {
	_, err := Start(Config{
		Command: "/nonexistent/swarmgrid-binary",
		Warmup:  10 * time.Millisecond,
	})
	require.Error(t, err)
}

func TestStartFailsWhenProcessExitsDuringWarmup(t *testing.T) {
	_, err := Start(Config{
		Command: "true",
		Warmup:  200 * time.Millisecond,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "warm-up")
}

func TestCleanupTerminatesProcessExactlyOnce(t *testing.T) {
	s, err := Start(Config{
		Command: "sleep",
		Args:    []string{"30"},
		Warmup:  20 * time.Millisecond,
	})
	require.NoError(t, err)
	assert.False(t, s.Exited())
	assert.Greater(t, s.Pid(), 0)

	s.Cleanup()
	assert.True(t, s.Exited())

	// Idempotence: a second call must be a no-op, not an error or panic.
	s.Cleanup()
	assert.True(t, s.Exited())
}

func TestCleanupAfterProcessAlreadyExited(t *testing.T) {
	s, err := Start(Config{
		Command: "sh",
		Args:    []string{"-c", "sleep 0.1"},
		Warmup:  20 * time.Millisecond,
	})
	require.NoError(t, err)

	deadline := time.Now().Add(5 * time.Second)
	for !s.Exited() && time.Now().Before(deadline) {
		time.Sleep(20 * time.Millisecond)
	}
	require.True(t, s.Exited())

	s.Cleanup() // already-gone child is not a cleanup failure
	s.Cleanup()
}

func TestCommandLineIsShellQuoted(t *testing.T) {
	s, err := Start(Config{
		Command: "sleep",
		Args:    []string{"30"},
		Warmup:  20 * time.Millisecond,
	})
	require.NoError(t, err)
	defer s.Cleanup()

	line := s.CommandLine()
	assert.Contains(t, line, "sleep")
	assert.Contains(t, line, "30")
}
