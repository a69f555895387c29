package server

import (
	"encoding/json"
	"net/http"
	"os"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/thenatx/nart/internal/ptyx"
	"github.com/thenatx/nart/internal/term"
)

// wsUpgrader upgrades HTTP connections to WebSocket.
var wsUpgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	// The bridge typically binds to localhost; allow any origin.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// pumpInterval paces the PTY poll loop feeding connected clients.
const pumpInterval = 15 * time.Millisecond

// bridge ties one PTY session to the emulated screen it drives. The PTY
// polling goroutine mutates the grid, the screen endpoint snapshots it;
// mu covers both.
type bridge struct {
	mu     sync.Mutex
	sess   *ptyx.Session
	grid   *term.Grid
	interp *term.Interpreter
}

func newBridge(sess *ptyx.Session, rows, cols int) *bridge {
	grid := term.NewGrid(rows, cols)
	return &bridge{sess: sess, grid: grid, interp: term.NewInterpreter(grid)}
}

func (b *bridge) feed(data []byte) {
	b.mu.Lock()
	b.interp.Feed(data)
	b.mu.Unlock()
}

func (b *bridge) resize(rows, cols int) {
	b.mu.Lock()
	b.grid.Resize(cols, rows, 1, 1)
	b.mu.Unlock()
	b.sess.Resize(rows, cols)
}

// terminalWSHandler launches a shell behind a PTY and bridges it over
// WebSocket while mirroring the byte stream into a server-side screen.
//
// Client protocol:
// - Text/binary messages are written to the shell as input.
// - Control messages are JSON: {"type":"resize","cols":<int>,"rows":<int>}
//   and {"type":"input","data":<string>}.
// - The server sends raw PTY output as text messages.
func (s *Server) terminalWSHandler(c *gin.Context) {
	conn, err := wsUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	sess, err := ptyx.Open(s.shellPath())
	if err != nil {
		_ = conn.WriteMessage(websocket.TextMessage, []byte("failed to start shell: "+err.Error()))
		return
	}
	defer sess.Close()

	cols := queryInt(c, "cols", 80)
	rows := queryInt(c, "rows", 24)
	br := newBridge(sess, rows, cols)
	br.resize(rows, cols)
	s.setBridge(br)
	defer s.dropBridge(br)

	done := make(chan struct{})
	pumpDone := make(chan struct{})
	go br.pump(conn, done, pumpDone)
	// The session defers close the master descriptor, so the pump must be
	// fully stopped first. Closing the connection unblocks a pump stuck in
	// a write to a stalled client.
	defer func() {
		close(done)
		_ = conn.Close()
		<-pumpDone
	}()

	type controlMsg struct {
		Type string `json:"type"`
		Cols int    `json:"cols"`
		Rows int    `json:"rows"`
		Data string `json:"data"`
	}
	for {
		mt, data, err := conn.ReadMessage()
		if err != nil {
			// client closed
			return
		}
		switch mt {
		case websocket.TextMessage, websocket.BinaryMessage:
			// Try JSON first for control frames.
			var cm controlMsg
			if json.Unmarshal(data, &cm) == nil && cm.Type != "" {
				switch cm.Type {
				case "resize":
					if cm.Cols > 0 && cm.Rows > 0 {
						br.resize(cm.Rows, cm.Cols)
					}
				case "input":
					sess.Write([]byte(cm.Data))
				}
				continue
			}
			sess.Write(data)
		case websocket.CloseMessage:
			return
		}
	}
}

// pump polls the PTY and forwards output to the client until the shell
// exits or the connection goes away. Each poll also advances the
// server-side screen. stopped is closed on return so the handler knows
// no further session I/O is in flight.
func (b *bridge) pump(conn *websocket.Conn, done <-chan struct{}, stopped chan<- struct{}) {
	defer close(stopped)
	ticker := time.NewTicker(pumpInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
		}
		if data := b.sess.Read(); len(data) > 0 {
			b.feed(data)
			if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
			continue
		}
		if !b.sess.Alive() {
			_ = conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, "session ended"))
			_ = conn.Close()
			return
		}
	}
}

// shellPath resolves the shell for a new session: settings override, then
// $SHELL, then common fallbacks.
func (s *Server) shellPath() string {
	if st := s.currentSettings(); st.Shell != "" {
		return st.Shell
	}
	if sh := os.Getenv("SHELL"); sh != "" {
		return sh
	}
	if _, err := os.Stat("/bin/bash"); err == nil {
		return "/bin/bash"
	}
	return "/bin/sh"
}

func (s *Server) setBridge(b *bridge) {
	s.mu.Lock()
	s.bridge = b
	s.mu.Unlock()
}

// dropBridge clears the active bridge, unless a newer session replaced it.
func (s *Server) dropBridge(b *bridge) {
	s.mu.Lock()
	if s.bridge == b {
		s.bridge = nil
	}
	s.mu.Unlock()
}

func (s *Server) currentBridge() *bridge {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.bridge
}

func queryInt(c *gin.Context, key string, def int) int {
	v, err := strconv.Atoi(c.Query(key))
	if err != nil || v <= 0 {
		return def
	}
	return v
}
