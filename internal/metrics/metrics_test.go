package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveQueryCountsErrors(t *testing.T) {
	before := testutil.ToFloat64(QueryErrors.WithLabelValues("sql", "test_shape"))

	ObserveQuery("sql", "test_shape", time.Now(), nil)
	ObserveQuery("sql", "test_shape", time.Now(), errors.New("boom"))

	after := testutil.ToFloat64(QueryErrors.WithLabelValues("sql", "test_shape"))
	assert.Equal(t, before+1, after)
}

func TestMiddlewareObservesRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Middleware())
	router.GET("/publishers/top/:limit", func(c *gin.Context) { c.Status(http.StatusOK) })

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/publishers/top/5", nil))

	count := testutil.CollectAndCount(HTTPRequestDuration, "vgsales_http_request_duration_seconds")
	assert.GreaterOrEqual(t, count, 1)
}
