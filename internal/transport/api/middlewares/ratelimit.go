package middlewares

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Limiter интерфейс ограничителя запросов (см. ratelimit.TokenBucket).
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// RateLimit ограничивает частоту запросов актора. Ключ корзины - id актора, для неавторизованных запросов -
// ip клиента. Ошибка хранилища лимитов не блокирует запрос.
func RateLimit(limiter Limiter, l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := "ip:" + c.ClientIP()
		if actor, ok := ActorFromContext(c); ok {
			key = "actor:" + strconv.FormatInt(actor.ID, 10)
		}

		allowed, err := limiter.Allow(c, key)
		if err != nil {
			l.WithError(err).WithField("key", key).Warn("rate limiter unavailable")
			c.Next()
			return
		}
		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests"})
			return
		}
		c.Next()
	}
}
