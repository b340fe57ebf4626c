package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
)

func TestMetricsMiddleware_RouteLabels(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(metricsMiddleware())
	r.GET("/api/articles/:article_id", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	baseRoute := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/api/articles/:article_id", "200"))
	baseMiss := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "unmatched", "404"))

	for _, path := range []string{"/api/articles/1", "/api/articles/2", "/random/1", "/random/2"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/api/articles/:article_id", "200")); got != baseRoute+2 {
		t.Errorf("Expected route counter %v, got %v", baseRoute+2, got)
	}
	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "unmatched", "404")); got != baseMiss+2 {
		t.Errorf("Expected unmatched counter %v, got %v", baseMiss+2, got)
	}
	if got := testutil.ToFloat64(httpInflight); got != 0 {
		t.Errorf("Expected no in-flight requests, got %v", got)
	}
}

func TestMetricsMiddleware_CountsRecoveredPanics(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(metricsMiddleware())
	r.Use(recoveryMiddleware(zerolog.Nop()))
	r.GET("/boom", func(c *gin.Context) {
		panic("boom")
	})

	base := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/boom", "500"))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("Expected 500, got %d", w.Code)
	}

	if got := testutil.ToFloat64(httpReqs.WithLabelValues("GET", "/boom", "500")); got != base+1 {
		t.Errorf("Expected panic counted as 500, got %v (base %v)", got, base)
	}
}
