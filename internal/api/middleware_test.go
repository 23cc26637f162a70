package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studymate/internal/api/handlers"
	"studymate/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type stubExtractor struct{}

func (stubExtractor) Extract([]byte) (string, error) { return "text", nil }

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, string) (string, error) { return "ok", nil }
func (stubGenerator) ModelName() string                                { return "stub-model" }

func newRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	SetupRoutes(router, handlers.NewHandler(stubExtractor{}, stubGenerator{}, 0), origins)
	return router
}

func TestCORSAllowList(t *testing.T) {
	router := newRouter([]string{"https://studymate.example.com", "http://localhost:5173/"})

	testCases := []struct {
		origin  string
		allowed bool
	}{
		{"https://studymate.example.com", true},
		{"http://localhost:5173", true},
		{"https://evil.example.com", false},
		{"", false},
	}

	for _, tc := range testCases {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.origin != "" {
			req.Header.Set("Origin", tc.origin)
		}
		router.ServeHTTP(rr, req)

		got := rr.Header().Get("Access-Control-Allow-Origin")
		if tc.allowed && got != tc.origin {
			t.Errorf("origin %q: Access-Control-Allow-Origin = %q, want echo", tc.origin, got)
		}
		if !tc.allowed && got != "" {
			t.Errorf("origin %q: should not be allowed, got %q", tc.origin, got)
		}
		if rr.Code != http.StatusOK {
			t.Errorf("origin %q: status = %d", tc.origin, rr.Code)
		}
	}
}

func TestCORSWildcard(t *testing.T) {
	router := newRouter([]string{"*"})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Origin", "https://anywhere.example.org")
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "https://anywhere.example.org" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
	if got := rr.Header().Get("Access-Control-Allow-Credentials"); got != "true" {
		t.Errorf("Access-Control-Allow-Credentials = %q", got)
	}
}

func TestCORSPreflight(t *testing.T) {
	router := newRouter([]string{"*"})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/quiz", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", "POST")
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", rr.Code)
	}
	if rr.Header().Get("Access-Control-Allow-Methods") == "" {
		t.Error("preflight should advertise allowed methods")
	}
}

func TestRequestID(t *testing.T) {
	router := newRouter([]string{"*"})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rr.Header().Get("X-Request-ID")
	if _, err := uuid.Parse(generated); err != nil {
		t.Errorf("generated request ID %q is not a UUID: %v", generated, err)
	}

	rr = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied-id")
	router.ServeHTTP(rr, req)
	if got := rr.Header().Get("X-Request-ID"); got != "client-supplied-id" {
		t.Errorf("X-Request-ID = %q, want client value", got)
	}
}

func TestUnknownRouteReturnsJSON(t *testing.T) {
	router := newRouter([]string{"*"})

	for _, path := range []string{"/missing", "/quiz/extra"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))

		if rr.Code != http.StatusNotFound {
			t.Errorf("%s: status = %d, want 404", path, rr.Code)
		}
		var resp models.ErrorResponse
		if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil || resp.Detail == "" {
			t.Errorf("%s: body %q is not an error response (%v)", path, rr.Body.String(), err)
		}
	}
}

func TestRecoveryReturnsJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	SetupRoutes(router, handlers.NewHandler(stubExtractor{}, stubGenerator{}, 0), []string{"*"})
	router.GET("/boom", func(c *gin.Context) { panic("handler exploded") })

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, "application/json") {
		t.Errorf("Content-Type = %q", ct)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v (%q)", err, rr.Body.String())
	}
	if resp.Detail != "Internal server error" {
		t.Errorf("detail = %q", resp.Detail)
	}
}
