package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ut "github.com/go-playground/universal-translator"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/pkg/errors"

	"github.com/trezcool/ecoquest/core"
	"github.com/trezcool/ecoquest/core/session"
	"github.com/trezcool/ecoquest/core/user"
)

type ServerDeps struct {
	Conf       *core.Config
	Logger     core.Logger
	Users      *user.Service
	Sessions   *session.Registry
	Translator ut.Translator
	Metrics    *Metrics
}

type Server struct {
	app      *echo.Echo
	address  string
	errors   chan error
	shutdown chan os.Signal
}

func NewServer(deps ServerDeps) *Server {
	s := &Server{
		app:      echo.New(),
		address:  deps.Conf.Server.Address,
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	if deps.Metrics == nil {
		deps.Metrics = NewMetrics()
	}
	s.setup(deps)
	return s
}

func (s *Server) setup(deps ServerDeps) {
	conf := deps.Conf
	s.app.HideBanner = true

	s.app.Pre(middleware.RemoveTrailingSlash())
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	// do not recover in DEV|TEST mode
	if !(conf.Debug || conf.TestMode) {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}
	s.app.Use(deps.Metrics.middleware())

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(deps.Logger, deps.Translator)
	s.app.Debug = conf.Debug

	s.app.GET("/", home(conf.AppName))
	s.app.GET("/metrics", echo.WrapHandler(deps.Metrics.Handler()))

	v1 := s.app.Group("/v1")
	tokens := newTokenizer(conf)
	authed := []echo.MiddlewareFunc{
		middleware.JWTWithConfig(tokens.jwtConfig()),
		sessionMiddleware(deps.Sessions, deps.Users),
	}
	student := append(authed[:len(authed):len(authed)], roleMiddleware(user.RoleStudent))
	teacher := append(authed[:len(authed):len(authed)], roleMiddleware(user.RoleTeacher))

	registerAuthAPI(v1, authed, tokens, deps.Users, deps.Sessions, deps.Metrics)
	registerOverviewAPI(v1.Group("/overview", authed...))

	// student dashboard
	registerChatAPI(v1.Group("/chat", student...), deps.Metrics)
	registerGoalAPI(v1.Group("/goals", student...))
	registerTreeAPI(v1.Group("/trees", student...))
	registerPhotoAPI(v1.Group("/photos", student...))
	registerCatalogueAPI(v1.Group("/games/catalogue", student...))
	registerLeaderboardAPI(v1.Group("/leaderboard", student...))

	// teacher dashboard
	registerQuizAPI(v1.Group("/quizzes", teacher...))
	registerGameAPI(v1.Group("/games", teacher...))
	registerRosterAPI(v1.Group("/students", teacher...), deps.Metrics)
	registerAnalyticsAPI(v1.Group("/analytics", teacher...))
	registerContentAPI(v1.Group("/content", teacher...))
}

// Start blocks until the server stops; failures other than a closed server are sent to Errors.
func (s *Server) Start() {
	if err := s.app.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	signal.Stop(s.shutdown)
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

func home(appName string) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		return ctx.String(http.StatusOK, "Welcome to "+appName+" API!")
	}
}
