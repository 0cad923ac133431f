// Package server exposes the comparison workflow over HTTP: multipart
// upload of a source plus comparison documents, a results view and report
// downloads. Results are held in memory per session; nothing is persisted.
package server

import (
	"context"
	"embed"
	"html/template"
	"net/http"
	"time"

	"github.com/aleister1102/rtfcompare/internal/common"
	"github.com/aleister1102/rtfcompare/internal/comparer"
	"github.com/aleister1102/rtfcompare/internal/config"
	"github.com/aleister1102/rtfcompare/internal/exporter"
	"github.com/aleister1102/rtfcompare/internal/reporter"
	"github.com/aleister1102/rtfcompare/internal/session"
	"github.com/rs/zerolog"
)

//go:embed templates/*
var templateFS embed.FS

// Server serves the comparison web UI
type Server struct {
	cfg           config.ServerConfig
	comparer      *comparer.Service
	reportBuilder *reporter.ConsolidatedReportBuilder
	csvExporter   *exporter.SummaryExporter
	sessions      *session.Manager
	store         *ResultStore
	templates     *template.Template
	httpServer    *http.Server
	logger        zerolog.Logger
}

// ServerBuilder provides a fluent interface for creating Server
type ServerBuilder struct {
	globalCfg *config.GlobalConfig
	logger    zerolog.Logger
}

// NewServerBuilder creates a new builder
func NewServerBuilder(logger zerolog.Logger) *ServerBuilder {
	return &ServerBuilder{logger: logger}
}

// WithConfig sets the global configuration
func (b *ServerBuilder) WithConfig(cfg *config.GlobalConfig) *ServerBuilder {
	b.globalCfg = cfg
	return b
}

// Build creates a new Server instance
func (b *ServerBuilder) Build() (*Server, error) {
	if b.globalCfg == nil {
		return nil, common.NewValidationError("config", b.globalCfg, "global config cannot be nil")
	}

	comparerService, err := comparer.NewServiceBuilder(b.logger).
		WithDiffConfig(b.globalCfg.DiffConfig).
		WithExtractorConfig(b.globalCfg.ExtractorConfig).
		Build()
	if err != nil {
		return nil, common.WrapError(err, "failed to build comparer service")
	}

	reportBuilder, err := reporter.NewConsolidatedReportBuilder(b.globalCfg.ReporterConfig, b.logger)
	if err != nil {
		return nil, common.WrapError(err, "failed to build report builder")
	}

	templates, err := template.ParseFS(templateFS, "templates/*.tmpl")
	if err != nil {
		return nil, common.WrapError(err, "failed to parse server templates")
	}

	ttl := time.Duration(b.globalCfg.SessionConfig.TTLHours) * time.Hour
	if ttl <= 0 {
		ttl = time.Duration(config.DefaultSessionTTLHours) * time.Hour
	}

	srv := &Server{
		cfg:           b.globalCfg.ServerConfig,
		comparer:      comparerService,
		reportBuilder: reportBuilder,
		csvExporter:   exporter.NewSummaryExporter(b.logger),
		sessions:      session.NewManager(b.globalCfg.SessionConfig, b.logger),
		store:         NewResultStore(ttl),
		templates:     templates,
		logger:        b.logger.With().Str("component", "Server").Logger(),
	}
	srv.httpServer = &http.Server{
		Addr:         srv.cfg.ListenAddr,
		Handler:      srv.routes(),
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 60 * time.Second,
	}

	return srv, nil
}

// routes registers the HTTP handlers
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /upload", s.handleUpload)
	mux.HandleFunc("GET /results", s.handleResults)
	mux.HandleFunc("GET /diff/{index}", s.handleDiff)
	mux.HandleFunc("GET /download/report", s.handleDownloadReport)
	mux.HandleFunc("GET /download/csv", s.handleDownloadCSV)
	return s.withCleanup(mux)
}

// withCleanup prunes stale sessions and stored results before each request
func (s *Server) withCleanup(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := s.sessions.CleanupStale(); err != nil {
			s.logger.Debug().Err(err).Msg("Session cleanup failed")
		}
		s.store.Prune()
		next.ServeHTTP(w, r)
	})
}

// Start runs the HTTP server until the context is cancelled
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.ListenAddr).Msg("Starting comparison server")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return common.WrapError(err, "server failed")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.httpServer.Shutdown(shutdownCtx)
	}
}

// Handler exposes the routed handler, used by tests
func (s *Server) Handler() http.Handler {
	return s.routes()
}
