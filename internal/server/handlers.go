// Package server exposes the three analytic views over a read-only HTTP
// API, with optional redis caching of the serialized responses.
package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"freshmarket-system/internal/analytics"
	"freshmarket-system/internal/pipeline"
)

const (
	TOP_PRODUCTS_CACHE_KEY     = "reports:top-products"
	PROBLEM_PRODUCTS_CACHE_KEY = "reports:problem-products"
	CITY_SUCCESS_CACHE_KEY     = "reports:city-success"
	CACHE_TTL_MEDIUM           = 30 * time.Minute
)

// ReportHandler serves the analytic views over the validated record set
// loaded at startup. The redis client may be nil, in which case every
// request recomputes its view.
type ReportHandler struct {
	records []pipeline.ValidRecord
	redis   *redis.Client
}

func NewReportHandler(records []pipeline.ValidRecord, redisClient *redis.Client) *ReportHandler {
	return &ReportHandler{
		records: records,
		redis:   redisClient,
	}
}

func (s *ReportHandler) success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
	})
}

func (s *ReportHandler) error(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{
		"success": false,
		"error":   message,
	})
}

// cached serves a view from redis when possible, otherwise computes,
// responds and backfills the cache. Cache failures only cost the round
// trip; the view is always served.
func (s *ReportHandler) cached(c *gin.Context, key string, compute func() interface{}) {
	ctx := c.Request.Context()

	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, key).Bytes(); err == nil {
			c.Data(http.StatusOK, "application/json", raw)
			return
		}
	}

	payload := gin.H{
		"success": true,
		"data":    compute(),
	}

	if s.redis != nil {
		if raw, err := json.Marshal(payload); err == nil {
			if err := s.redis.Set(ctx, key, raw, CACHE_TTL_MEDIUM).Err(); err != nil {
				log.Printf("Failed to cache %s: %v", key, err)
			}
		}
	}

	c.JSON(http.StatusOK, payload)
}

func (s *ReportHandler) GetTopProducts(c *gin.Context) {
	s.cached(c, TOP_PRODUCTS_CACHE_KEY, func() interface{} {
		return analytics.TopProductByCity(s.records)
	})
}

func (s *ReportHandler) GetProblemProducts(c *gin.Context) {
	s.cached(c, PROBLEM_PRODUCTS_CACHE_KEY, func() interface{} {
		return analytics.ProblemProducts(s.records)
	})
}

func (s *ReportHandler) GetCitySuccess(c *gin.Context) {
	s.cached(c, CITY_SUCCESS_CACHE_KEY, func() interface{} {
		return analytics.CitySuccessRates(s.records)
	})
}

func (s *ReportHandler) Health(c *gin.Context) {
	s.success(c, gin.H{"records": len(s.records)})
}

// InvalidateReportCaches drops every cached view, used after a reload.
func (s *ReportHandler) InvalidateReportCaches(ctx context.Context) {
	if s.redis == nil {
		return
	}
	_ = s.redis.Del(ctx, TOP_PRODUCTS_CACHE_KEY, PROBLEM_PRODUCTS_CACHE_KEY, CITY_SUCCESS_CACHE_KEY)
}

// NewRouter wires the report routes. rateLimit uses the limiter formatted
// syntax; empty disables the middleware.
func NewRouter(h *ReportHandler, rateLimit string) *gin.Engine {
	r := gin.Default()

	if rateLimit != "" {
		r.Use(RateLimit(rateLimit))
	}

	r.GET("/healthz", h.Health)

	api := r.Group("/api/reports")
	{
		api.GET("/top-products", h.GetTopProducts)
		api.GET("/problem-products", h.GetProblemProducts)
		api.GET("/city-success", h.GetCitySuccess)
	}

	return r
}
