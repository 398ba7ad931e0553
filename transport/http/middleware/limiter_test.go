package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"gearbase/config"
	"gearbase/infras/otel/mocks"
	"gearbase/shared/cache"
	cacheMocks "gearbase/shared/cache/mocks"
	"gearbase/transport/http/middleware"
)

func limiterConfig(enabled bool, maxReqs int) *config.Config {
	cfg := &config.Config{}
	cfg.App.RateLimiter.Enable = enabled
	cfg.App.RateLimiter.MaxRequests = maxReqs
	cfg.App.RateLimiter.WindowSeconds = 60

	return cfg
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(false, 1), mockCache)

	rec := httptest.NewRecorder()
	m.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_FirstRequestPasses(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true, 5), mockCache)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(cache.Nil)

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), 1, 60).
		Return(nil)

	rec := httptest.NewRecorder()
	m.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "5", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "4", rec.Header().Get("X-RateLimit-Remaining"))
}

func TestRateLimit_OverTheLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true, 2), mockCache)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_, _ any, value any) error {
			count := value.(*int)
			*count = 2

			return nil
		})

	rec := httptest.NewRecorder()
	m.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestRateLimit_CacheFailureAllowsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	m := middleware.NewAppMiddleware(mocks.NewOtel(), limiterConfig(true, 2), mockCache)

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(assert.AnError)

	rec := httptest.NewRecorder()
	m.RateLimit()(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}
