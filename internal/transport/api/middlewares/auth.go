package middlewares

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/transport/api/tokens"
	"github.com/gin-gonic/gin"
)

var ErrTokenNotExist = errors.New("token not exist")

const CurrentActorKey = "currentActor"

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан,
// вернется ошибка ErrTokenNotExist.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*tokens.ActorClaims, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if !strings.HasPrefix(tokenHeader, bearer) {
		return nil, ErrTokenNotExist
	}

	claims, err := tokens.ValidateActorJWT(tokenHeader[len(bearer):], jwtTokenSecret)
	if err != nil {
		return nil, fmt.Errorf("check authorization: %w", err)
	}
	return claims, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст (поле CurrentActorKey) domain.Actor.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			msg := "Access denied. Invalid token."
			switch {
			case errors.Is(err, ErrTokenNotExist):
				msg = "Access denied. No token provided."
			case errors.Is(err, tokens.ErrTokenExpired):
				msg = "Access denied. Token has expired."
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		c.Set(CurrentActorKey, claims.Actor())
		c.Next()
	}
}

// RequireRole пропускает только акторов с ролью не ниже required. Должен стоять после AuthRequired.
func RequireRole(required domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		if !actor.Role.AtLeast(required) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				gin.H{"error": "You do not have permission to access this resource"})
			return
		}
		c.Next()
	}
}

// ActorFromContext берет из контекста gin актора, установленного в AuthRequired.
func ActorFromContext(c *gin.Context) (domain.Actor, bool) {
	v, exist := c.Get(CurrentActorKey)
	if !exist {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
