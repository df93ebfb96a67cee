// Package server is the thin gin-based HTTP adapter exposing the four
// circuits' proving and commitment-utility operations over the wire. It
// holds no domain logic of its own: every handler parses a request, calls
// into circuits/commitment/snark, and serializes the result.
package server

import (
	"context"
	"fmt"
	"net/http"
	"net/http/pprof"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nume-crypto/inventory-privacy/commitment"
	"github.com/nume-crypto/inventory-privacy/internal/config"
	"github.com/nume-crypto/inventory-privacy/internal/logger"
)

// proveTimeoutSeconds bounds read/write/idle timeouts on the proving
// endpoints. Groth16 proving for the four-inventory transfer circuit can
// run considerably longer than a typical request, so this is overridable
// per deployment rather than hardcoded.
var proveTimeoutSeconds = config.EnvInt("INVENTORY_HTTP_TIMEOUT_SECONDS", 30)

// Config controls the listen address and hash-parameter selection for a
// Server. Params defaults to commitment.AuditedPoseidonParams() when nil.
type Config struct {
	Host   string
	Port   int
	Params *commitment.Params
}

// Server is the proof-generation HTTP adapter: one Groth16 key set per
// circuit, a gin router, and the http.Server it's bound to once Start runs.
type Server struct {
	config Config
	keys   CircuitKeys
	router *gin.Engine
	http   *http.Server
}

// NewServer builds a Server with keys already set up (see SetupAllCircuits)
// and registers its middleware and routes.
func NewServer(cfg Config, keys CircuitKeys) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	s := &Server{
		config: cfg,
		keys:   keys,
		router: router,
	}

	s.setupMiddleware()
	s.setupRoutes()

	return s
}

func (s *Server) hashParams() *commitment.Params {
	if s.config.Params != nil {
		return s.config.Params
	}
	return commitment.AuditedPoseidonParams()
}

func (s *Server) setupMiddleware() {
	s.router.Use(func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Logger().Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("request handled")
	})

	s.router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})
}

func (s *Server) setupRoutes() {
	s.router.GET("/health", health)

	prove := s.router.Group("/api/prove")
	{
		prove.POST("/item-exists", s.proveItemExists)
		prove.POST("/withdraw", s.proveWithdraw)
		prove.POST("/deposit", s.proveDeposit)
		prove.POST("/transfer", s.proveTransfer)
	}

	s.router.POST("/api/commitment/create", s.createCommitment)
	s.router.POST("/api/blinding/generate", s.generateBlinding)

	s.setupDebugRoutes()
}

// setupDebugRoutes exposes the standard net/http/pprof endpoints under
// /debug/pprof. Groth16 proving is CPU-heavy enough that a stuck or slow
// prove request is worth profiling in place rather than reproducing offline.
func (s *Server) setupDebugRoutes() {
	debug := s.router.Group("/debug/pprof")
	{
		debug.GET("/", gin.WrapF(pprof.Index))
		debug.GET("/cmdline", gin.WrapF(pprof.Cmdline))
		debug.GET("/profile", gin.WrapF(pprof.Profile))
		debug.POST("/symbol", gin.WrapF(pprof.Symbol))
		debug.GET("/symbol", gin.WrapF(pprof.Symbol))
		debug.GET("/trace", gin.WrapF(pprof.Trace))
		debug.GET("/:name", func(c *gin.Context) {
			pprof.Handler(c.Param("name")).ServeHTTP(c.Writer, c.Request)
		})
	}
}

// Start binds and serves until the process is killed or Stop is called. It
// blocks, returning nil only after a graceful Stop.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	timeout := time.Duration(proveTimeoutSeconds) * time.Second
	s.http = &http.Server{
		Addr:         addr,
		Handler:      s.router,
		ReadTimeout:  timeout,
		WriteTimeout: timeout,
		IdleTimeout:  4 * timeout,
	}

	logger.Logger().Info().Str("address", addr).Msg("starting proof server")
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("server: listen: %w", err)
	}
	return nil
}

// Stop shuts the server down gracefully, waiting for in-flight requests to
// finish or ctx to expire.
func (s *Server) Stop(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	logger.Logger().Info().Msg("stopping proof server")
	return s.http.Shutdown(ctx)
}
