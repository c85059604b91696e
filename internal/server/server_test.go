package server

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

type pingRoute struct{}

func (pingRoute) RegisterRoutes(r gin.IRouter) {
	r.GET("/v1/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
}

func TestServer_Health(t *testing.T) {
	tests := []struct {
		name           string
		checks         map[string]HealthChecker
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "no checks",
			expectedStatus: http.StatusOK,
			expectedBody:   `{"components":{},"status":"healthy"}`,
		},
		{
			name: "database reachable",
			checks: map[string]HealthChecker{
				"database": pingFunc(func(context.Context) error { return nil }),
			},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"components":{"database":"connected"},"status":"healthy"}`,
		},
		{
			name: "database unreachable",
			checks: map[string]HealthChecker{
				"database": pingFunc(func(context.Context) error { return errors.New("connection refused") }),
			},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"components":{"database":"unreachable"},"status":"unhealthy"}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := New("127.0.0.1:0", "release", tc.checks)

			resp := httptest.NewRecorder()
			s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/health", nil))

			require.Equal(t, tc.expectedStatus, resp.Code)
			require.JSONEq(t, tc.expectedBody, resp.Body.String())
		})
	}
}

func TestServer_Mount(t *testing.T) {
	s := New("127.0.0.1:0", "release", nil)
	s.Mount(pingRoute{})

	resp := httptest.NewRecorder()
	s.Engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))

	require.Equal(t, http.StatusOK, resp.Code)
	require.Equal(t, "pong", resp.Body.String())
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	s := New("127.0.0.1:0", "release", nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	cancel()
	require.NoError(t, <-done)
}
