// Package serverproc owns the lifecycle of the network entry-point process
// that the harness validates. The harness owns at most one server process at
// a time; it is started before any suite runs and torn down exactly once on
// every exit path.
package serverproc

import (
	"fmt"
	"io"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"github.com/swarmgrid/mobile-onboarding-tests/framework"
)

// DisableTUIFlag suppresses the server's interactive terminal UI so its
// output stays script-parseable.
const DisableTUIFlag = "--disable-tui"

// DefaultWarmup is how long the harness waits after spawning the server
// before assuming it accepts requests. This is a deliberate blocking wait,
// not a readiness poll; a server that takes longer surfaces as a
// connectivity-suite failure rather than a hang.
const DefaultWarmup = 5 * time.Second

const terminateGrace = 5 * time.Second

type Config struct {
	Command string
	Args    []string
	Warmup  time.Duration
	Output  io.Writer // receives the child's stdout and stderr
	Logger  framework.Logger
}

// NewConfig returns the standard configuration for launching the server
// executable at the given path.
func NewConfig(command string) Config {
	return Config{
		Command: command,
		Args:    []string{DisableTUIFlag},
		Warmup:  DefaultWarmup,
	}
}

// Server is a handle to the running entry-point process. It is the exclusive
// owner of the child; nothing else signals or reaps it.
type Server struct {
	cmd       *exec.Cmd
	startedAt time.Time
	logger    framework.Logger
	cleanup   sync.Once
	done      chan struct{}
	waitErr   error
}

// Start spawns the server and blocks for the configured warm-up interval
// before returning. A spawn failure, or an exit during warm-up, is fatal.
func Start(cfg Config) (*Server, error) {
	if cfg.Command == "" {
		return nil, fmt.Errorf("no server command configured")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = framework.NullLogger()
	}
	warmup := cfg.Warmup
	if warmup <= 0 {
		warmup = DefaultWarmup
	}
	out := cfg.Output
	if out == nil {
		out = io.Discard
	}

	cmd := exec.Command(cfg.Command, cfg.Args...)
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("could not start server process: %w", err)
	}

	s := &Server{
		cmd:       cmd,
		startedAt: time.Now(),
		logger:    logger,
		done:      make(chan struct{}),
	}
	go func() {
		s.waitErr = cmd.Wait()
		close(s.done)
	}()

	logger.Printf("started server process (pid %d): %s", cmd.Process.Pid, s.CommandLine())
	logger.Printf("waiting %s for server warm-up", warmup)

	select {
	case <-s.done:
		return nil, fmt.Errorf("server process exited during warm-up: %v", s.waitErr)
	case <-time.After(warmup):
	}
	return s, nil
}

func (s *Server) Pid() int {
	return s.cmd.Process.Pid
}

func (s *Server) StartedAt() time.Time {
	return s.startedAt
}

// Exited reports whether the child has already terminated on its own.
func (s *Server) Exited() bool {
	select {
	case <-s.done:
		return true
	default:
		return false
	}
}

// CommandLine returns the spawned command in shell-quoted form for display.
func (s *Server) CommandLine() string {
	var b commandBuilder
	b.add(s.cmd.Path)
	b.add(s.cmd.Args[1:]...)
	return b.String()
}

// Cleanup terminates the server. It runs its logic at most once no matter how
// many exit paths reach it (deferred call, signal handler, failure path), and
// an already-exited child is not an error.
func (s *Server) Cleanup() {
	s.cleanup.Do(func() {
		if s.Exited() {
			s.logger.Printf("server process already exited (%v)", s.waitErr)
			return
		}
		s.logger.Printf("terminating server process (pid %d)", s.Pid())
		if err := s.cmd.Process.Signal(syscall.SIGTERM); err != nil {
			// The process can be gone between the Exited check and the
			// signal; that is not a cleanup failure.
			s.logger.Printf("termination signal not delivered: %v", err)
			return
		}
		select {
		case <-s.done:
		case <-time.After(terminateGrace):
			s.logger.Printf("server did not stop within %s, killing", terminateGrace)
			_ = s.cmd.Process.Kill()
			<-s.done
		}
	})
}
