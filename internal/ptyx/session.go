//go:build !windows

// Package ptyx owns the pseudo-terminal side of a session: it spawns the
// shell behind a PTY master, exposes non-blocking byte I/O on it, and
// handles the child process lifecycle.
package ptyx

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/creack/pty"
	"golang.org/x/sys/unix"

	"github.com/thenatx/nart/internal/system"
)

// readBufSize is the per-call read buffer. The session keeps no other
// buffering.
const readBufSize = 64 * 1024

// ErrNoShell is returned when no shell executable is configured and
// $SHELL is unset. This is a fatal startup condition, not recovered.
var ErrNoShell = errors.New("ptyx: no shell configured and $SHELL is unset")

// Session bundles the PTY master descriptor with the child shell process.
// Exactly one session owns a given descriptor and child. All I/O on it is
// non-blocking; the host's redraw loop polls Read each tick. mu serializes
// every method so a polling goroutine and a closing goroutine never touch
// the descriptor or lifecycle flags concurrently.
type Session struct {
	mu     sync.Mutex
	master *os.File
	cmd    *exec.Cmd
	buf    []byte
	closed bool
	exited bool
}

// OpenDefault opens a session on the shell named by $SHELL.
func OpenDefault() (*Session, error) {
	return Open(os.Getenv("SHELL"))
}

// Open forks the given shell behind a new PTY and puts the master
// descriptor into non-blocking mode. Spawn failures are hard errors.
func Open(shellPath string) (*Session, error) {
	if strings.TrimSpace(shellPath) == "" {
		return nil, ErrNoShell
	}
	cmd := exec.Command(shellPath)
	cmd.Env = os.Environ()
	master, err := pty.Start(cmd)
	if err != nil {
		return nil, fmt.Errorf("ptyx: start %s: %w", shellPath, err)
	}
	if err := unix.SetNonblock(int(master.Fd()), true); err != nil {
		_ = master.Close()
		_ = cmd.Process.Kill()
		return nil, fmt.Errorf("ptyx: set master non-blocking: %w", err)
	}
	return &Session{master: master, cmd: cmd, buf: make([]byte, readBufSize)}, nil
}

// Read returns whatever bytes the shell has produced, up to 64 KiB, and
// returns immediately. No pending data yields an empty result: EAGAIN and
// EIO are normal "nothing ready" conditions on a PTY master, never
// errors. Any other failure is logged and also yields an empty result so
// the caller's redraw loop proceeds regardless.
func (s *Session) Read() []byte {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	// File.Fd puts the descriptor back into blocking mode, undoing the
	// flag set at Open (Setsize clears it the same way). Re-assert it
	// before every raw read so the read cannot stall the caller's loop.
	fd := int(s.master.Fd())
	if err := unix.SetNonblock(fd, true); err != nil {
		system.Logger.Error("pty set non-blocking failed", "err", err)
		return nil
	}
	n, err := unix.Read(fd, s.buf)
	if n > 0 {
		out := make([]byte, n)
		copy(out, s.buf[:n])
		return out
	}
	if err != nil && !errors.Is(err, unix.EAGAIN) && !errors.Is(err, unix.EIO) {
		system.Logger.Error("pty read failed", "err", err)
	}
	return nil
}

// Write sends keystroke bytes to the shell. Failures are logged and the
// input is dropped; a terminal must stay interactive even when one write
// fails.
func (s *Session) Write(p []byte) {
	if s == nil || len(p) == 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	if _, err := s.master.Write(p); err != nil {
		system.Logger.Error("pty write failed", "err", err)
	}
}

// Resize propagates new grid dimensions to the PTY so the child relayouts.
func (s *Session) Resize(rows, cols int) {
	if s == nil || rows <= 0 || cols <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	err := pty.Setsize(s.master, &pty.Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		system.Logger.Warn("pty resize failed", "err", err)
	}
}

// Alive reports whether the child shell is still running, using a
// non-blocking wait so the host loop can tell "no data yet" apart from
// "session ended".
func (s *Session) Alive() bool {
	if s == nil {
		return false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || s.exited || s.cmd == nil || s.cmd.Process == nil {
		return false
	}
	var ws unix.WaitStatus
	pid, err := unix.Wait4(s.cmd.Process.Pid, &ws, unix.WNOHANG, nil)
	if err != nil {
		if errors.Is(err, unix.ECHILD) {
			s.exited = true
			return false
		}
		// EINTR and friends: assume still running, re-probed next tick.
		return true
	}
	if pid == s.cmd.Process.Pid && (ws.Exited() || ws.Signaled()) {
		s.exited = true
		return false
	}
	return true
}

// Close terminates the session: it signals the child with SIGTERM if one
// is still tracked and drops the master descriptor. It never waits for
// the child to exit, and is idempotent. Read and Write after Close are
// no-ops.
func (s *Session) Close() {
	if s == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	if !s.exited && s.cmd != nil && s.cmd.Process != nil {
		if err := s.cmd.Process.Signal(unix.SIGTERM); err != nil {
			system.Logger.Warn("failed to signal child shell", "err", err)
		}
	}
	_ = s.master.Close()
}
