package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"contactbook/contact"
	"contactbook/errs"
	"contactbook/group"
	"contactbook/pkg/config"
	"contactbook/pkg/logger"
	"contactbook/pkg/sentry"
	"contactbook/report"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const defaultAddr = ":8080"

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	Config *config.Config
	Logger *zap.SugaredLogger

	ContactService contact.Service
	GroupService   group.Service
	ReportService  report.Service

	// StorePing, when set, is consulted by the health check.
	StorePing func(ctx context.Context) error
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router: echo.New(),
		Addr:   defaultAddr,
		Config: config.Empty,
		Logger: logger.NOOPLogger,
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.Router.HideBanner = true
	s.Router.HidePort = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.handleError
	s.RegisterGlobalMiddlewares()

	api := s.Router.Group("/api")
	s.RegisterContactRoutes(api.Group("/contacts"))
	s.RegisterGroupRoutes(api.Group("/groups"))
	s.RegisterReportRoutes(api.Group("/report"))
	s.RegisterHealthRoutes()

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(s.requestLogger())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	if s.Config.RateLimit > 0 {
		store := middleware.NewRateLimiterMemoryStore(rate.Limit(s.Config.RateLimit))
		s.Router.Use(middleware.RateLimiter(store))
	}

	// CORS
	if origins := s.Config.Origins(); len(origins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
		}))
	}
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("request",
				"method", v.Method,
				"uri", v.URI,
				"status", v.Status,
				"latency", v.Latency.String(),
				"request_id", v.RequestID,
			)
			return nil
		},
	})
}

func (s *Server) Start() error {
	s.Logger.Infow("http server listening", "addr", s.Addr)
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

// handleError is the only place where errors become responses. Application
// errors map to their status, echo errors keep theirs, anything else is a
// 500 that gets logged and reported.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := statusOf(err)
	if status >= http.StatusInternalServerError {
		s.Logger.Errorw("request failed",
			"method", c.Request().Method,
			"uri", c.Request().RequestURI,
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
			"error", err,
		)
		sentry.WithContext(c).Error(err)
	}

	var werr error
	if c.Request().Method == http.MethodHead {
		werr = c.NoContent(status)
	} else {
		werr = writeError(c, status, message, errs.ErrorFields(err), err)
	}
	if werr != nil {
		s.Logger.Errorw("write error response", "error", werr)
	}
}

func statusOf(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, fmt.Sprint(he.Message)
	}

	switch errs.ErrorCode(err) {
	case errs.EINVALID, errs.EFOREIGNKEY:
		return http.StatusBadRequest, errs.ErrorMessage(err)
	case errs.ENOTFOUND:
		return http.StatusNotFound, errs.ErrorMessage(err)
	case errs.ECONFLICT:
		return http.StatusConflict, errs.ErrorMessage(err)
	case errs.EUNAUTHORIZED:
		return http.StatusUnauthorized, errs.ErrorMessage(err)
	case errs.ENOTIMPLEMENTED:
		return http.StatusNotImplemented, errs.ErrorMessage(err)
	}
	return http.StatusInternalServerError, "Internal server error"
}
