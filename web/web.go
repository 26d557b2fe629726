// Package web provides the HTTP server of the clubsite backend: routing,
// middleware, static upload serving and background job scheduling.
package web

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/clubsite/server/config"
	"github.com/clubsite/server/logger"
	"github.com/clubsite/server/web/controller"
	"github.com/clubsite/server/web/entity"
	"github.com/clubsite/server/web/job"
	"github.com/clubsite/server/web/middleware"
)

// Server is the clubsite web server with its controllers and scheduled jobs.
type Server struct {
	httpServer *http.Server
	listener   net.Listener

	cron *cron.Cron

	ctx    context.Context
	cancel context.CancelFunc
}

func NewServer() *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{ctx: ctx, cancel: cancel}
}

// initRouter initializes Gin, registers middleware, the upload file tree and
// the API controllers, and returns the configured engine.
func (s *Server) initRouter() *gin.Engine {
	if config.IsDebug() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.DefaultWriter = io.Discard
		gin.DefaultErrorWriter = io.Discard
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger())
	engine.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
	}))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	// Uploaded files are served directly off disk.
	engine.Static("/uploads", config.GetUploadFolder())

	api := engine.Group("/api")
	{
		controller.NewAuthController(api)
		controller.NewNewsController(api)
		controller.NewWorkController(api)
		controller.NewMemberController(api)
		controller.NewFriendLinkController(api)
		controller.NewFameMemberController(api)
		controller.NewHistoryController(api)
		controller.NewAdminHistoryController(api)
		controller.NewMessageController(api)
		controller.NewUserController(api)
		controller.NewAnnouncementController(api)
		controller.NewUploadController(api)
		controller.NewSystemController(api)
	}

	engine.NoRoute(func(c *gin.Context) {
		entity.JSONError(c, http.StatusNotFound, "not found")
	})

	return engine
}

// startTask schedules the recurring maintenance jobs.
func (s *Server) startTask() {
	s.cron.AddJob("@daily", job.NewCheckpointJob())
	s.cron.AddJob("@daily", job.NewClearLogsJob())
	s.cron.AddJob("@every 1h", job.NewCacheStatsJob())
}

// Start opens the listener and serves until Stop is called.
func (s *Server) Start() (err error) {
	defer func() {
		if err != nil {
			_ = s.Stop()
		}
	}()

	s.cron = cron.New()
	s.startTask()
	s.cron.Start()

	engine := s.initRouter()

	listen := config.GetListen()
	listener, err := net.Listen("tcp", listen)
	if err != nil {
		return err
	}
	s.listener = listener
	logger.Infof("%s %s listening on %s", config.GetName(), config.GetVersion(), listen)

	s.httpServer = &http.Server{Handler: engine}
	go func() {
		if err := s.httpServer.Serve(s.listener); err != nil && err != http.ErrServerClosed {
			logger.Error("web server:", err)
		}
	}()

	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop() error {
	s.cancel()
	if s.cron != nil {
		s.cron.Stop()
	}

	var err error
	if s.httpServer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err = s.httpServer.Shutdown(ctx)
	}
	if s.listener != nil {
		if closeErr := s.listener.Close(); err == nil && closeErr != nil &&
			!errors.Is(closeErr, net.ErrClosed) {
			err = closeErr
		}
	}
	return err
}

func (s *Server) GetCtx() context.Context {
	return s.ctx
}
