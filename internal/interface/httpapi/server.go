package httpapi

import (
	"context"
	"net/http"

	"leadfilter-service/internal/infrastructure/config"
	"leadfilter-service/internal/usecase"
	"leadfilter-service/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Server exposes the lead processor over HTTP
type Server struct {
	processor *usecase.LeadProcessor
	gatherer  prometheus.Gatherer
	logger    logger.Logger
	httpSrv   *http.Server
}

// NewServer creates a new HTTP server wired to the given processor
func NewServer(cfg *config.Config, processor *usecase.LeadProcessor, gatherer prometheus.Gatherer, logger logger.Logger) *Server {
	s := &Server{
		processor: processor,
		gatherer:  gatherer,
		logger:    logger,
	}

	s.httpSrv = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      s.setupRouter(),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	return s
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api")
	api.POST("/process-leads", s.processLeads)

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))

	return r
}

// processLeads runs one deduplication pass over the document named by the
// input parameter and writes survivors to the output parameter's path.
// Any propagated error becomes a 500 carrying the error's message.
func (s *Server) processLeads(c *gin.Context) {
	input := c.Query("input")
	output := c.Query("output")
	if input == "" || output == "" {
		c.String(http.StatusBadRequest, "input and output parameters are required")
		return
	}

	if err := s.processor.ProcessLeads(c.Request.Context(), input, output); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}

	c.String(http.StatusOK, "Filtered leads have been written")
}

// Run starts the HTTP server and blocks until it stops
func (s *Server) Run() error {
	s.logger.Info("Starting HTTP server", "addr", s.httpSrv.Addr)
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}
