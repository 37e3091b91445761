package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

var errInvalidPathID = errors.New("invalid id")

// businessErrors ошибки бизнес-правил, текст которых отдается клиенту.
var businessErrors = []error{
	domain.ErrNotEnoughBalance,
	domain.ErrPromotionAlreadyUsed,
	domain.ErrMinSpendingNotMet,
	domain.ErrEventPointsExhausted,
	domain.ErrNotEventGuest,
	domain.ErrAlreadyProcessed,
	domain.ErrNotRedemption,
	domain.ErrUserNotVerified,
}

// getActorFromContext берет из контекста gin текущего актора. Актор устанавливается в
// middlewares.AuthRequired, поэтому для роутов за ним всегда присутствует.
func getActorFromContext(c *gin.Context) domain.Actor {
	actor, _ := middlewares.ActorFromContext(c)
	return actor
}

// pathID парсит положительный int64 параметр пути. При ошибке прерывает запрос со статусом 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		_ = c.AbortWithError(http.StatusBadRequest, errInvalidPathID).
			SetType(gin.ErrorTypePublic).
			SetMeta("invalid " + name)
		return 0, false
	}
	return id, true
}

// abortWithServiceError переводит ошибку сервисного слоя в http статус.
func abortWithServiceError(c *gin.Context, err error) {
	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		abortPublic(c, http.StatusBadRequest, err, validationErr.Error())
	case errors.Is(err, domain.ErrValidation):
		abortPublic(c, http.StatusBadRequest, err, domain.ErrValidation.Error())
	case errors.Is(err, domain.ErrRecordNotFound):
		abortPublic(c, http.StatusNotFound, err, domain.ErrRecordNotFound.Error())
	case errors.Is(err, domain.ErrForbidden):
		abortPublic(c, http.StatusForbidden, err, "You do not have permission to access this resource")
	case errors.Is(err, domain.ErrBusinessRule):
		abortPublic(c, http.StatusBadRequest, err, businessMessage(err))
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

func abortPublic(c *gin.Context, status int, err error, msg string) {
	_ = c.AbortWithError(status, err).SetType(gin.ErrorTypePublic).SetMeta(msg)
}

func businessMessage(err error) string {
	for _, target := range businessErrors {
		if errors.Is(err, target) {
			return strings.TrimPrefix(target.Error(), domain.ErrBusinessRule.Error()+": ")
		}
	}
	return domain.ErrBusinessRule.Error()
}
