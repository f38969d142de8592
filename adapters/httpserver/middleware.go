package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)

		s.Logger.Debugw("request handled",
			zap.String("request_id", s.requestID(c)),
			zap.String("method", c.Request().Method),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().Status),
			zap.Duration("latency", time.Since(start)),
		)

		return err
	}
}
