package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	requestIDHeader = "X-Request-ID"
	requestIDKey    = "request_id"
)

func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		c.Set(requestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}

func accessLog(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Info().
			Str("request_id", c.GetString(requestIDKey)).
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("http request")
	}
}

// recovery turns panics into the generic 500 body.
func recovery(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.Error().
					Str("request_id", c.GetString(requestIDKey)).
					Interface("panic", rec).
					Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, messageBody{Message: internalErrorMessage})
			}
		}()
		c.Next()
	}
}

// errorHandler logs errors attached with c.Error and answers with the generic
// 500 body when the handler wrote nothing.
func errorHandler(logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		for _, e := range c.Errors {
			logger.Error().
				Err(e.Err).
				Str("request_id", c.GetString(requestIDKey)).
				Str("method", c.Request.Method).
				Str("path", c.FullPath()).
				Msg("request failed")
		}
		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, messageBody{Message: internalErrorMessage})
		}
	}
}
