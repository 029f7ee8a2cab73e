package httpserver

import (
	"context"
	"errors"
	"fmt"

	"contactbook/contact"
	"contactbook/group"
	"contactbook/pkg/config"
	"contactbook/report"

	"go.uber.org/zap"
)

type Options func(s *Server) error

func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		if cfg == nil {
			return errors.New("httpserver: nil config")
		}
		s.Config = cfg
		if cfg.Port > 0 {
			s.Addr = fmt.Sprintf(":%d", cfg.Port)
		}
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		if l != nil {
			s.Logger = l
		}
		return nil
	}
}

func WithContactService(svc contact.Service) Options {
	return func(s *Server) error {
		s.ContactService = svc
		return nil
	}
}

func WithGroupService(svc group.Service) Options {
	return func(s *Server) error {
		s.GroupService = svc
		return nil
	}
}

func WithReportService(svc report.Service) Options {
	return func(s *Server) error {
		s.ReportService = svc
		return nil
	}
}

func WithStorePing(ping func(ctx context.Context) error) Options {
	return func(s *Server) error {
		s.StorePing = ping
		return nil
	}
}
