package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/moodtrack/moodjournal/pkg/apperr"
	"github.com/moodtrack/moodjournal/pkg/response"
)

// ErrorHandler is the single translation boundary between domain errors
// and HTTP responses. Handlers push errors with c.Error and return;
// tagged errors map to their status and code, anything else becomes a
// 500 with no internal detail leaked in production.
func ErrorHandler(logger *logrus.Logger, env string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		err := c.Errors.Last().Err

		var ae *apperr.Error
		if errors.As(err, &ae) {
			if ae.Code == apperr.CodeInternal {
				logger.WithError(err).WithField("path", c.Request.URL.Path).Error("request failed")
			} else {
				logger.WithError(err).WithField("path", c.Request.URL.Path).Debug("request rejected")
			}
			msg := ae.Message
			if ae.Code == apperr.CodeInternal && env == "production" {
				msg = "Internal Server Error"
			}
			response.Fail(c, ae.Status(), msg, string(ae.Code), ae.Fields)
			return
		}

		logger.WithError(err).WithField("path", c.Request.URL.Path).Error("unhandled error")
		msg := "Internal Server Error"
		if env != "production" {
			msg = err.Error()
		}
		response.Fail(c, http.StatusInternalServerError, msg, string(apperr.CodeInternal), nil)
	}
}
