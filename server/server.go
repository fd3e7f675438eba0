// Package server is an illustrative HTTP query service over the
// Terrain facade: post a document, then classify/interp/fill against
// the handle it returns. It is not the §6 CLI driver — no file I/O, no
// PNG emission, nothing beyond an in-process handle map.
package server

import (
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/danielw-oss/terrain/terrain"
)

// Config configures a Server. An empty CORSOrigins means cors.Default()
// (all origins allowed, with the middleware's default method set), the
// same as the teacher's own use of the middleware.
type Config struct {
	CORSOrigins []string
}

// Server holds a handle map of live Terrain values behind a single
// RWMutex; each request that mutates a terrain takes the write lock
// for the duration of that call, each read-only request takes the
// read lock.
type Server struct {
	cfg      Config
	router   *gin.Engine
	mu       sync.RWMutex
	terrains map[string]terrain.Terrain
	nextID   uint64
}

// New builds a Server with its routes wired, ready for Run or for use
// as an http.Handler in tests.
func New(cfg Config) *Server {
	s := &Server{
		cfg:      cfg,
		terrains: make(map[string]terrain.Terrain),
	}

	r := gin.Default()
	if len(cfg.CORSOrigins) > 0 {
		corsCfg := cors.DefaultConfig()
		corsCfg.AllowAllOrigins = false
		corsCfg.AllowOrigins = cfg.CORSOrigins
		r.Use(cors.New(corsCfg))
	} else {
		r.Use(cors.Default())
	}

	r.POST("/terrain", s.handleCreate)
	r.GET("/terrain/:id/classify", s.handleClassify)
	r.GET("/terrain/:id/interp", s.handleInterp)
	r.POST("/terrain/:id/fill", s.handleFill)

	s.router = r
	return s
}

// Handler exposes the underlying http.Handler, for httptest-based
// integration tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run starts the HTTP listener on addr, blocking until it fails.
func (s *Server) Run(addr string) error {
	return s.router.Run(addr)
}

func (s *Server) store(t terrain.Terrain) string {
	id := atomic.AddUint64(&s.nextID, 1)
	key := strconv.FormatUint(id, 10)

	s.mu.Lock()
	s.terrains[key] = t
	s.mu.Unlock()

	return key
}

func (s *Server) lookup(id string) (terrain.Terrain, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	t, ok := s.terrains[id]
	return t, ok
}

func parseQueryPoint(c *gin.Context) (x, y float64, ok bool) {
	x, errX := strconv.ParseFloat(c.Query("x"), 64)
	y, errY := strconv.ParseFloat(c.Query("y"), 64)
	if errX != nil || errY != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameters 'x' and 'y' must be numeric"})
		return 0, 0, false
	}
	return x, y, true
}
