// Package rest exposes the portfolio over HTTP: public read routes for
// artworks and events, admin routes guarded by a bearer token, the two image
// upload routes, health and Prometheus metrics.
package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/dmitrijs2005/artfolio/internal/logging"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators of the HTTP layer. Metrics, Gatherer and DB
// are optional.
type Deps struct {
	Artworks    ArtworkService
	Events      EventService
	Users       UserService
	Upload      Uploader
	LocalUpload Uploader
	Logger      logging.Logger
	Metrics     RequestObserver
	Gatherer    prometheus.Gatherer
	DB          Pinger

	Production  bool
	UploadDir   string
	CORSOrigins []string
}

type Server struct {
	address  string
	artworks ArtworkService
	events   EventService
	users    UserService
	upload   Uploader
	local    Uploader
	logger   logging.Logger
	metrics  RequestObserver
	gatherer prometheus.Gatherer
	db       Pinger

	production  bool
	uploadDir   string
	corsOrigins []string

	engine *gin.Engine
}

func NewServer(address string, d Deps) *Server {
	logger := d.Logger
	if logger == nil {
		logger = logging.Nop{}
	}
	s := &Server{
		address:     address,
		artworks:    d.Artworks,
		events:      d.Events,
		users:       d.Users,
		upload:      d.Upload,
		local:       d.LocalUpload,
		logger:      logger.With("module", "http_server"),
		metrics:     d.Metrics,
		gatherer:    d.Gatherer,
		db:          d.DB,
		production:  d.Production,
		uploadDir:   d.UploadDir,
		corsOrigins: d.CORSOrigins,
	}
	s.engine = s.routes()
	return s
}

// Handler returns the configured router.
func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() *gin.Engine {
	setupValidation()
	if s.production {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestLogger())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = s.corsOrigins
	if len(corsConfig.AllowOrigins) == 0 {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization", requestIDHeader}
	r.Use(cors.New(corsConfig))

	r.GET("/healthz", s.handleHealth)
	if s.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.gatherer, promhttp.HandlerOpts{})))
	}
	if !s.production && s.uploadDir != "" {
		r.Static("/uploads", s.uploadDir)
	}

	api := r.Group("/api")
	{
		api.POST("/auth/login", s.handleLogin)

		api.GET("/artworks", s.handleListArtworks)
		api.GET("/artworks/:id", s.handleGetArtwork)
		api.GET("/artworks/:id/related", s.handleRelatedArtworks)

		api.GET("/events", s.handleListEvents)
		api.GET("/events/:id", s.handleGetEvent)
	}

	admin := api.Group("", s.requireAdmin())
	{
		admin.POST("/upload", s.handleUpload(s.upload))
		admin.POST("/upload-local", s.handleUpload(s.local))

		admin.POST("/artworks", s.handleCreateArtwork)
		admin.PUT("/artworks", s.handleUpdateArtwork)
		admin.DELETE("/artworks", s.handleDeleteArtwork)
		admin.DELETE("/artworks/:id", s.handleDeleteArtwork)

		admin.POST("/events", s.handleCreateEvent)
		admin.PUT("/events/:id", s.handleUpdateEvent)
		admin.DELETE("/events/:id", s.handleDeleteEvent)
		admin.DELETE("/events/images/:id", s.handleDeleteEventImage)
	}

	return r
}

func (s *Server) handleHealth(c *gin.Context) {
	if s.db != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Warn(ctx, "health check failed", "error", err)
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Run serves until ctx is cancelled, then drains in-flight requests.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.engine,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(context.Background(), "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(shutdownCtx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
