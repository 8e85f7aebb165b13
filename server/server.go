/*
Copyright © 2026 the AquaGenius authors.
This file is part of AquaGenius.

AquaGenius is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

AquaGenius is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with AquaGenius.  If not, see <http://www.gnu.org/licenses/>.
*/

// Package server exposes the design calculator over a stateless JSON
// API. Every request carries its full inputs and every response is
// computed from scratch; there is no session state and no persistence.
package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	wwtp "github.com/ral197979/aquagenius"
	"github.com/ral197979/aquagenius/pfd"
	"github.com/ral197979/aquagenius/report"
)

// Server bundles the router and the calculator dependencies.
type Server struct {
	engine *gin.Engine
	conv   *wwtp.Converter
	sim    *wwtp.Simulator
	log    logrus.FieldLogger
}

// New constructs a server with routes and middleware. The simulator is
// shared across requests; it carries no per-request state.
func New(sim *wwtp.Simulator) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		engine: engine,
		conv:   wwtp.NewConverter(),
		sim:    sim,
		log:    logrus.StandardLogger(),
	}
	s.registerRoutes()
	return s
}

// Engine exposes the underlying gin engine (for tests).
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Run starts the HTTP server and blocks.
func (s *Server) Run(addr string) error {
	s.log.WithFields(logrus.Fields{"addr": addr}).Info("serving design API")
	return s.engine.Run(addr)
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/v1")
	{
		v1.GET("/healthz", s.handleHealthz)
		v1.POST("/design", s.handleDesign)
		v1.POST("/simulate", s.handleSimulate)
		v1.POST("/report", s.handleReport)
	}
}

// designRequest is the input boundary for a full sizing + simulation
// pass. Adjustments are optional; absent means design rates.
type designRequest struct {
	Technology  string           `json:"technology" binding:"required"`
	Influent    wwtp.Influent    `json:"influent"`
	Adjustments wwtp.Adjustments `json:"adjustments,omitempty"`
}

// simulateRequest re-runs the simulation against an existing sizing
// record, typically with changed adjustment multipliers. The sizing
// record is untouched by the re-run.
type simulateRequest struct {
	Sizing      wwtp.Sizing      `json:"sizing" binding:"required"`
	Influent    wwtp.Influent    `json:"influent"`
	Adjustments wwtp.Adjustments `json:"adjustments,omitempty"`
}

func (s *Server) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": wwtp.Version})
}

// handleDesign sizes the selected technology and runs the initial
// simulation.
// POST /v1/design
func (s *Server) handleDesign(c *gin.Context) {
	_, sz, res, ok := s.design(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"sizing": sz, "results": res})
}

// handleSimulate re-evaluates a sized plant with operator adjustments.
// POST /v1/simulate
func (s *Server) handleSimulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	res := s.sim.Simulate(&req.Sizing, &req.Influent, req.Adjustments)
	c.JSON(http.StatusOK, gin.H{"results": res})
}

// handleReport returns the full PDF report for a design request.
// POST /v1/report
func (s *Server) handleReport(c *gin.Context) {
	inf, sz, res, ok := s.design(c)
	if !ok {
		return
	}
	dot := pfd.Graph(inf, sz, res)
	pdf, err := report.Generate(inf, sz, res, dot, pfd.Render)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// design binds a designRequest and performs the sizing + simulation
// pass, replying with the appropriate error status itself when it
// returns ok == false.
func (s *Server) design(c *gin.Context) (*wwtp.Influent, *wwtp.Sizing, *wwtp.Results, bool) {
	var req designRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, nil, false
	}
	tech, err := wwtp.ParseTechnology(req.Technology)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, nil, false
	}
	sz, err := wwtp.Size(s.conv, tech, &req.Influent)
	if err != nil {
		// Input-format error class: unsupported flow unit.
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, nil, nil, false
	}
	res := s.sim.Simulate(sz, &req.Influent, req.Adjustments)
	return &req.Influent, sz, res, true
}
