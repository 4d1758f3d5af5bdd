package middleware

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go-hrms/internal/identity"
	"go-hrms/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	idempotencyTTL     = 24 * time.Hour
	idempotencyLockTTL = 30 * time.Second
)

type bodyRecorder struct {
	gin.ResponseWriter
	body *bytes.Buffer
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body.Write(b)
	return w.ResponseWriter.Write(b)
}

// Idempotency replays the stored response of a POST that carried the same
// Idempotency-Key for the same user and route. Only 2xx responses are stored.
func Idempotency(rdb *redis.Client, logger *zap.Logger) gin.HandlerFunc {
	log := logger.Named("idempotency")
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		ctx := c.Request.Context()
		userID := c.GetString(identity.KeyEmployeeID)
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"

		if cached, err := rdb.Get(ctx, cacheKey).Bytes(); err == nil {
			status, body := decodeCached(cached)
			log.Debug("idempotent replay", zap.String("key", cacheKey))
			c.Header("Idempotent-Replayed", "true")
			c.Data(status, "application/json; charset=utf-8", body)
			c.Abort()
			return
		} else if err != redis.Nil {
			log.Warn("idempotency lookup failed", zap.Error(err))
			c.Next()
			return
		}

		acquired, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			log.Warn("idempotency lock failed", zap.Error(err))
			c.Next()
			return
		}
		if !acquired {
			response.Error(c, http.StatusConflict, "PROCESSING", "Request is already being processed", nil)
			c.Abort()
			return
		}
		defer rdb.Del(ctx, lockKey)

		rec := &bodyRecorder{ResponseWriter: c.Writer, body: &bytes.Buffer{}}
		c.Writer = rec

		c.Next()

		status := rec.Status()
		if status >= http.StatusOK && status < http.StatusMultipleChoices {
			if err := rdb.Set(ctx, cacheKey, encodeCached(status, rec.body.Bytes()), idempotencyTTL).Err(); err != nil {
				log.Warn("idempotency store failed", zap.Error(err))
			}
		}
	}
}

// Cached entries are "<status>|<body>".
func encodeCached(status int, body []byte) []byte {
	return append([]byte(strconv.Itoa(status)+"|"), body...)
}

func decodeCached(v []byte) (int, []byte) {
	head, body, found := bytes.Cut(v, []byte("|"))
	if !found {
		return http.StatusOK, v
	}
	status, err := strconv.Atoi(string(head))
	if err != nil {
		return http.StatusOK, v
	}
	return status, body
}
