// SPDX-License-Identifier: MIT
package server

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Version   string    `json:"version"`
	Vertices  int       `json:"vertices"`
	Edges     int       `json:"edges"`
	Cache     bool      `json:"cache"`
}

func (s *Server) health(c *gin.Context) {
	st := s.graph.Stats()
	c.JSON(http.StatusOK, HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   ServiceName,
		Version:   s.version,
		Vertices:  st.VertexCount,
		Edges:     st.EdgeCount,
		Cache:     s.cache != nil,
	})
}
