// Package api exposes the traffic snapshot over HTTP for a browser map
// client. The engine itself is event-driven and in-process; this surface
// transports slider events in and rendered state out.
package api

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/urban-viz/bikeflow/controller"
	"github.com/urban-viz/bikeflow/metrics"
)

// Server serves the snapshot API. The controller's handlers assume the
// serialized event-loop model of a map client, so a mutex stands in for
// that loop here: concurrent requests take turns.
type Server struct {
	mu   sync.Mutex
	ctrl *controller.Controller
	srv  *http.Server
}

// NewServer builds the router around ctrl.
func NewServer(ctrl *controller.Controller, port int) *Server {
	s := &Server{ctrl: ctrl}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default())

	router.GET("/api/health", s.handleHealth)
	router.GET("/api/stations", s.handleStations)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	s.srv = &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start begins serving in the background.
func (s *Server) Start() {
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()
	log.Printf("server listening on %s", s.srv.Addr)
}

// HandleGracefulShutdown blocks until SIGINT/SIGTERM, then drains the
// server.
func (s *Server) HandleGracefulShutdown() {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	log.Printf("shutdown signal received")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	} else {
		log.Printf("server shut down successfully")
	}
}

// Handler exposes the router for tests.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
