package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
)

const (
	cacheStatusHeader = "X-Cache"
	cachePrefix       = "btcwallet:response:v1:"
	cacheHit          = "HIT"
	cacheMiss         = "MISS"
)

type cachedResponse struct {
	Status      int    `json:"status"`
	ContentType string `json:"content_type"`
	Body        string `json:"body"`
}

// ResponseCache serves successful GET responses from Redis, keyed by the
// request URL. Redis failures fail open: the request is answered by the next
// handler and the error is only logged. A nil cache disables the middleware.
func ResponseCache(cache *redis.Client, ttl time.Duration, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cache == nil || c.Method() != fiber.MethodGet {
			return c.Next()
		}

		key := cachePrefix + c.OriginalURL()

		lookupCtx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		raw, err := cache.Get(lookupCtx, key).Bytes()
		cancel()

		storeFailed := false
		switch {
		case err == nil:
			var stored cachedResponse
			if err := json.Unmarshal(raw, &stored); err == nil {
				c.Set(cacheStatusHeader, cacheHit)
				c.Set(fiber.HeaderContentType, stored.ContentType)
				return c.Status(stored.Status).SendString(stored.Body)
			}
			logger.Warn("failed to decode cached response", slog.String("key", key))
		case errors.Is(err, redis.Nil):
		default:
			storeFailed = true
			logger.Warn("response cache lookup failed", slog.String("key", key), slog.Any("error", err))
		}

		if err := c.Next(); err != nil {
			return err
		}
		c.Set(cacheStatusHeader, cacheMiss)

		if storeFailed || c.Response().StatusCode() != fiber.StatusOK {
			return nil
		}

		payload, err := json.Marshal(cachedResponse{
			Status:      c.Response().StatusCode(),
			ContentType: string(c.Response().Header.ContentType()),
			Body:        string(c.Response().Body()),
		})
		if err != nil {
			logger.Warn("failed to encode response for cache", slog.String("key", key), slog.Any("error", err))
			return nil
		}

		persistCtx, persistCancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer persistCancel()
		if err := cache.Set(persistCtx, key, payload, ttl).Err(); err != nil {
			logger.Warn("failed to persist cached response", slog.String("key", key), slog.Any("error", err))
		}

		return nil
	}
}
