package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenatx/nart/internal/term"
	appver "github.com/thenatx/nart/internal/version"
)

func (s *Server) mountAPI(r *gin.Engine) {
	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/api/version", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"version": appver.AppVersion})
	})
	r.GET("/api/screen", s.screenHandler)
	r.GET("/ws/terminal", s.terminalWSHandler)
}

// screenSnapshot is the JSON shape of the emulated screen.
type screenSnapshot struct {
	Rows   int      `json:"rows"`
	Cols   int      `json:"cols"`
	Cursor struct { // zero-based grid coordinates
		Row int `json:"row"`
		Col int `json:"col"`
	} `json:"cursor"`
	Lines []string `json:"lines"`
}

// screenHandler returns the current session's screen content, one string
// per row with trailing blanks trimmed.
func (s *Server) screenHandler(c *gin.Context) {
	br := s.currentBridge()
	if br == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active terminal session"})
		return
	}
	br.mu.Lock()
	snap := snapshotGrid(br.grid)
	br.mu.Unlock()
	c.JSON(http.StatusOK, snap)
}

func snapshotGrid(g *term.Grid) screenSnapshot {
	var snap screenSnapshot
	snap.Rows, snap.Cols = g.Size()
	cur := g.Cursor()
	snap.Cursor.Row, snap.Cursor.Col = cur.Row, cur.Col
	snap.Lines = make([]string, snap.Rows)
	for r := 0; r < snap.Rows; r++ {
		snap.Lines[r] = g.Row(r)
	}
	return snap
}
