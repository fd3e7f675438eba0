package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/danielw-oss/terrain/document"
	"github.com/danielw-oss/terrain/geometry"
)

// handleCreate parses a document.Document from the request body,
// builds a Terrain from it, and returns an opaque handle id.
func (s *Server) handleCreate(c *gin.Context) {
	doc, err := document.Load(c.Request.Body, 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	t, err := doc.IntoTerrain()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id := s.store(t)
	c.JSON(http.StatusCreated, gin.H{"id": id})
}

// handleClassify answers Terrain.Classify at the (x, y) query point.
func (s *Server) handleClassify(c *gin.Context) {
	t, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such terrain handle"})
		return
	}
	x, y, ok := parseQueryPoint(c)
	if !ok {
		return
	}

	s.mu.RLock()
	v := t.Classify(geometry.Point{X: x, Y: y})
	s.mu.RUnlock()
	c.JSON(http.StatusOK, gin.H{"value": v})
}

// handleInterp answers Terrain.Interp at the (x, y) query point.
// Grid-backed terrains have no interpolation and report 422.
func (s *Server) handleInterp(c *gin.Context) {
	t, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such terrain handle"})
		return
	}
	x, y, ok := parseQueryPoint(c)
	if !ok {
		return
	}

	s.mu.RLock()
	v, ok := t.Interp(geometry.Point{X: x, Y: y})
	s.mu.RUnlock()
	if !ok {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "interpolation requires a quadtree-backed terrain"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"value": v})
}

// fillRequest is the body shape for handleFill: a vertex-pair polygon
// plus the cell value to rasterize it with.
type fillRequest struct {
	Polygon [][2]float64 `json:"polygon" binding:"required"`
	Value   uint8        `json:"value"`
}

// handleFill rasterizes the posted polygon into the terrain at id.
func (s *Server) handleFill(c *gin.Context) {
	t, ok := s.lookup(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "no such terrain handle"})
		return
	}

	var req fillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	verts := make([]geometry.Point, len(req.Polygon))
	for i, v := range req.Polygon {
		verts[i] = geometry.Point{X: v[0], Y: v[1]}
	}
	poly, ok := geometry.NewPolygon(verts)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "polygon has fewer than three distinct vertices after closing"})
		return
	}

	s.mu.Lock()
	t.FillPolygon(poly, req.Value)
	s.mu.Unlock()

	c.Status(http.StatusNoContent)
}
