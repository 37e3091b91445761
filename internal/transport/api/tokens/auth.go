package tokens

import (
	"errors"
	"fmt"
	"time"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// ActorClaims данные актора, которые несет токен. Выпуск токенов - задача внешнего сервиса авторизации,
// здесь они только проверяются.
type ActorClaims struct {
	jwt.RegisteredClaims
	ID          int64       `json:"id"`
	Utorid      string      `json:"utorid"`
	Role        domain.Role `json:"role"`
	OrganizerOf []int64     `json:"organizerOf,omitempty"`
}

// Actor переводит claims в domain.Actor.
func (c *ActorClaims) Actor() domain.Actor {
	var organizerOf map[int64]struct{}
	if len(c.OrganizerOf) > 0 {
		organizerOf = make(map[int64]struct{}, len(c.OrganizerOf))
		for _, id := range c.OrganizerOf {
			organizerOf[id] = struct{}{}
		}
	}
	return domain.Actor{
		ID:          c.ID,
		Utorid:      c.Utorid,
		Role:        c.Role,
		OrganizerOf: organizerOf,
	}
}

// GenerateActorJWT выпускает токен для актора. Используется в тестах и служебных утилитах.
func GenerateActorJWT(actor domain.Actor, expire time.Duration, key []byte) (string, error) {
	organizerOf := make([]int64, 0, len(actor.OrganizerOf))
	for id := range actor.OrganizerOf {
		organizerOf = append(organizerOf, id)
	}
	claims := ActorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
		},
		ID:          actor.ID,
		Utorid:      actor.Utorid,
		Role:        actor.Role,
		OrganizerOf: organizerOf,
	}
	token, err := generateJWT(claims, key)
	if err != nil {
		return "", fmt.Errorf("generating actor jwt token: %s", err.Error())
	}
	return token, nil
}

// ValidateActorJWT проверяет подпись и срок токена и возвращает его claims. Токен с неизвестной ролью
// отклоняется.
func ValidateActorJWT(tokenString string, key []byte) (*ActorClaims, error) {
	token, err := validateJWT(tokenString, new(ActorClaims), key)
	if err != nil {
		return nil, fmt.Errorf("validating actor jwt token: %w", err)
	}

	claims, ok := token.Claims.(*ActorClaims)
	if !ok || !claims.Role.IsValid() {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}

func generateJWT(claims jwt.Claims, key []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(key)
	if err != nil {
		return "", fmt.Errorf("generating jwt token: %s", err.Error())
	}

	return tokenString, nil
}

func validateJWT(tokenString string, claims jwt.Claims, key []byte) (*jwt.Token, error) {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(_ *jwt.Token) (any, error) {
		return key, nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parsing jwt token: %w", err)
	}

	return token, nil
}
