package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func newBodyRouter(limit int64) (*gin.Engine, *interface{}) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	var got interface{}
	r.Use(JSONBody(limit))
	r.POST("/test", func(c *gin.Context) {
		got = GetBody(c)
		c.Status(http.StatusOK)
	})
	return r, &got
}

func TestJSONBody_Parsed(t *testing.T) {
	r, got := newBodyRouter(DefaultBodyLimit)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/test", strings.NewReader(`{"a":1}`))
	req.Header.Set("Content-Type", "application/json; charset=utf-8")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	body, ok := (*got).(map[string]interface{})
	if !ok || body["a"] != float64(1) {
		t.Errorf("expected parsed body {a:1}, got %#v", *got)
	}
}

func TestJSONBody_EmptyBodyDefaultsToObject(t *testing.T) {
	r, got := newBodyRouter(DefaultBodyLimit)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/test", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body, ok := (*got).(map[string]interface{}); !ok || len(body) != 0 {
		t.Errorf("expected empty object, got %#v", *got)
	}
}

func TestJSONBody_IgnoresOtherContentTypes(t *testing.T) {
	r, got := newBodyRouter(DefaultBodyLimit)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/test", strings.NewReader("not json"))
	req.Header.Set("Content-Type", "text/plain")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if body, ok := (*got).(map[string]interface{}); !ok || len(body) != 0 {
		t.Errorf("expected empty object, got %#v", *got)
	}
}

func TestJSONBody_Malformed(t *testing.T) {
	r, got := newBodyRouter(DefaultBodyLimit)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", "/test", strings.NewReader(`{"a":`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	if *got != nil {
		t.Errorf("handler should not run for malformed JSON, got %#v", *got)
	}
}

func TestIsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		want        bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"application/problem+json", true},
		{"text/plain", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isJSON(tt.contentType); got != tt.want {
			t.Errorf("isJSON(%q) = %v, want %v", tt.contentType, got, tt.want)
		}
	}
}
