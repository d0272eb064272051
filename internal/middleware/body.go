package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/starterkit/render-starter/internal/common"
)

// BodyKey is the context key holding the parsed JSON body
const BodyKey = "json_body"

// DefaultBodyLimit caps JSON request bodies at 1 MiB
const DefaultBodyLimit int64 = 1 << 20

// JSONBody parses application/json request bodies into the context so
// handlers can read them with GetBody. Requests with other content types pass
// through untouched.
func JSONBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody || !isJSON(c.ContentType()) {
			c.Next()
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, limit))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				_ = c.Error(common.NewAppError(http.StatusRequestEntityTooLarge, "Request body too large", err))
			} else {
				_ = c.Error(common.BadRequest("Could not read request body", err))
			}
			c.Abort()
			return
		}
		// leave the body readable for handlers that bind it themselves
		c.Request.Body = io.NopCloser(bytes.NewReader(raw))

		if len(bytes.TrimSpace(raw)) == 0 {
			c.Next()
			return
		}

		var body interface{}
		if err := json.Unmarshal(raw, &body); err != nil {
			_ = c.Error(common.BadRequest("Invalid JSON payload", err))
			c.Abort()
			return
		}
		c.Set(BodyKey, body)
		c.Next()
	}
}

// GetBody returns the parsed JSON body, or an empty object when the request
// carried none
func GetBody(c *gin.Context) interface{} {
	if body, ok := c.Get(BodyKey); ok {
		return body
	}
	return map[string]interface{}{}
}

func isJSON(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		mediaType = contentType
	}
	return mediaType == "application/json" || strings.HasSuffix(mediaType, "+json")
}
