package cache

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/bizstack/backoffice/pkg/logger"
)

// NewClient connects to redis, or returns nil when no address is configured.
// A nil client disables caching without any caller-side branching.
func NewClient(addr string) *redis.Client {
	if addr == "" {
		return nil
	}

	client := redis.NewClient(&redis.Options{Addr: addr})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		logger.Logger.Warn().Err(err).Str("addr", addr).Msg("Redis unavailable, response cache disabled")
		return nil
	}

	logger.Logger.Info().Str("addr", addr).Msg("Redis response cache enabled")
	return client
}

// bufferingWriter captures the response so it can be stored after serving
type bufferingWriter struct {
	http.ResponseWriter
	statusCode int
	body       bytes.Buffer
}

func (bw *bufferingWriter) WriteHeader(code int) {
	bw.statusCode = code
	bw.ResponseWriter.WriteHeader(code)
}

func (bw *bufferingWriter) Write(p []byte) (int, error) {
	bw.body.Write(p)
	return bw.ResponseWriter.Write(p)
}

// Middleware caches successful GET responses in redis for ttl
func Middleware(client *redis.Client, ttl time.Duration, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if client == nil || r.Method != http.MethodGet {
			next.ServeHTTP(w, r)
			return
		}

		key := cacheKey(r)
		ctx := r.Context()

		if cached, err := client.Get(ctx, key).Bytes(); err == nil && len(cached) > 0 {
			logger.Logger.Debug().Str("path", r.URL.Path).Msg("Cache hit")
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("X-Cache", "HIT")
			w.Write(cached)
			return
		}

		bw := &bufferingWriter{ResponseWriter: w, statusCode: http.StatusOK}
		bw.Header().Set("X-Cache", "MISS")
		next.ServeHTTP(bw, r)

		if bw.statusCode == http.StatusOK {
			if err := client.Set(ctx, key, bw.body.Bytes(), ttl).Err(); err != nil {
				logger.Logger.Warn().Err(err).Str("key", key).Msg("Failed to cache response")
			}
		}
	}
}

// cacheKey hashes method, path, query and auth header into a redis key
func cacheKey(r *http.Request) string {
	components := fmt.Sprintf("%s:%s:%s:%s",
		r.Method,
		r.URL.Path,
		r.URL.RawQuery,
		r.Header.Get("Authorization"),
	)
	hash := sha256.Sum256([]byte(components))
	return "cache:" + hex.EncodeToString(hash[:])
}
