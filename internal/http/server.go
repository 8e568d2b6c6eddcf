// README: API gateway; registers HTTP routes and delegates to the planner.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tripcraft/internal/http/handlers"
	"tripcraft/internal/http/middleware"
	"tripcraft/internal/planner"
)

type ServerDeps struct {
	Planner *planner.Driver
}

type Server struct {
	planner *planner.Driver
}

func NewServer(deps ServerDeps) *Server {
	return &Server{planner: deps.Planner}
}

func (s *Server) Routes() http.Handler {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(middleware.Logging(), middleware.Recovery())

	planHandler := handlers.NewPlanHandler(s.planner)
	engine.POST("/api/plans", planHandler.Create)

	engine.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	return engine
}
