package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/service"
	"github.com/gin-gonic/gin"
)

type EventTransactionsHandler struct {
	awardSvs EventAwardServicer
}

func NewEventTransactionsHandler(awardSvs EventAwardServicer) *EventTransactionsHandler {
	return &EventTransactionsHandler{awardSvs: awardSvs}
}

type EventAwardParams struct {
	Type   string  `json:"type" binding:"required,eq=event"`
	Amount int64   `json:"amount" binding:"required"`
	Utorid *string `json:"utorid" binding:"omitempty,utorid"`
	Remark string  `json:"remark"`
}

type EventAwardResponse struct {
	ID        int64                  `json:"id"`
	Recipient string                 `json:"recipient"`
	Awarded   int64                  `json:"awarded"`
	Type      domain.TransactionType `json:"type"`
	RelatedID *int64                 `json:"relatedId"`
	Remark    string                 `json:"remark"`
	CreatedBy string                 `json:"createdBy"`
}

// Create POST RouteGroup + EventTransactionsRoute. С utorid в теле отдается один объект, без него - массив
// начислений всем гостям.
func (h *EventTransactionsHandler) Create(c *gin.Context) {
	actor := getActorFromContext(c)
	eventID, ok := pathID(c, EventIDParam)
	if !ok {
		return
	}

	var params EventAwardParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	transactions, err := h.awardSvs.AwardEventPoints(reqCtx, actor, eventID, service.EventAwardArgs{
		Utorid: params.Utorid,
		Amount: params.Amount,
		Remark: params.Remark,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	response := make([]EventAwardResponse, len(transactions))
	for i, t := range transactions {
		response[i] = EventAwardResponse{
			ID:        t.ID,
			Recipient: t.Utorid,
			Awarded:   t.Points,
			Type:      t.Type,
			RelatedID: t.RelatedID,
			Remark:    t.Remark,
			CreatedBy: t.CreatedByUtorid,
		}
	}

	if params.Utorid != nil && len(response) == 1 {
		c.JSON(http.StatusCreated, &response[0])
		return
	}
	c.JSON(http.StatusCreated, response)
}
