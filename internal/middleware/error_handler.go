package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/starterkit/render-starter/internal/common"
	"github.com/starterkit/render-starter/pkg/logger"
)

// ErrorHandler is the single place request errors become responses. Handlers
// report failures with c.Error; panics are recovered into a 500. Stack traces
// are logged and returned only when development is true.
func ErrorHandler(development bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				err := fmt.Errorf("panic: %v", rec)
				render(c, err, common.CallerStack(1), development)
				c.Abort()
			}
		}()

		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		var stack []string
		var appErr *common.AppError
		if errors.As(err, &appErr) {
			stack = appErr.StackTrace()
		}
		render(c, err, stack, development)
	}
}

func render(c *gin.Context, err error, stack []string, development bool) {
	status := common.StatusOf(err)
	message := common.MessageOf(err)

	log := logger.WithRequestID(GetRequestID(c))
	var event *zerolog.Event
	if status >= http.StatusInternalServerError {
		event = log.Error()
	} else {
		event = log.Warn()
	}
	event = event.
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int("status", status).
		Err(err)
	if development && len(stack) > 0 {
		event = event.Strs("stack", stack)
	}
	event.Msg("request failed")

	if c.Writer.Written() {
		return
	}

	code := common.ErrorCode(status)
	var appErr *common.AppError
	if errors.As(err, &appErr) && appErr.Code != "" {
		code = appErr.Code
	}
	info := &common.ErrorInfo{
		Code:    code,
		Message: message,
	}
	if development {
		info.Stack = stack
	}
	c.JSON(status, common.Response{Success: false, Error: info})
}
