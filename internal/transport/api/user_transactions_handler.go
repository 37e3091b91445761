package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/service"
	"github.com/gin-gonic/gin"
)

type UserTransactionsHandler struct {
	txSvs    TransactionServicer
	querySvs QueryServicer
}

func NewUserTransactionsHandler(txSvs TransactionServicer, querySvs QueryServicer) *UserTransactionsHandler {
	return &UserTransactionsHandler{
		txSvs:    txSvs,
		querySvs: querySvs,
	}
}

type TransferParams struct {
	Type   string `json:"type" binding:"required,eq=transfer"`
	Amount int64  `json:"amount" binding:"required"`
	Remark string `json:"remark"`
}

type TransferResponse struct {
	ID        int64                  `json:"id"`
	Sender    string                 `json:"sender"`
	Recipient string                 `json:"recipient"`
	Type      domain.TransactionType `json:"type"`
	Sent      int64                  `json:"sent"`
	Remark    string                 `json:"remark"`
	CreatedBy string                 `json:"createdBy"`
}

// Transfer POST RouteGroup + UserTransactionsRoute.
func (h *UserTransactionsHandler) Transfer(c *gin.Context) {
	actor := getActorFromContext(c)
	recipientID, ok := pathID(c, UserIDParam)
	if !ok {
		return
	}

	var params TransferParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.txSvs.CreateTransfer(reqCtx, actor, service.TransferArgs{
		RecipientID: recipientID,
		Amount:      params.Amount,
		Remark:      params.Remark,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &TransferResponse{
		ID:        res.Sent.ID,
		Sender:    res.Sent.Utorid,
		Recipient: res.Received.Utorid,
		Type:      res.Sent.Type,
		Sent:      res.Received.Points,
		Remark:    res.Sent.Remark,
		CreatedBy: res.Sent.CreatedByUtorid,
	})
}

type RedemptionParams struct {
	Type   string `json:"type" binding:"required,eq=redemption"`
	Amount int64  `json:"amount" binding:"required"`
	Remark string `json:"remark"`
}

type RedemptionResponse struct {
	ID          int64                  `json:"id"`
	Utorid      string                 `json:"utorid"`
	Type        domain.TransactionType `json:"type"`
	Amount      int64                  `json:"amount"`
	Remark      string                 `json:"remark"`
	CreatedBy   string                 `json:"createdBy"`
	ProcessedBy *string                `json:"processedBy"`
}

// Redeem POST RouteGroup + MyTransactionsRoute.
func (h *UserTransactionsHandler) Redeem(c *gin.Context) {
	actor := getActorFromContext(c)

	var params RedemptionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := h.txSvs.CreateRedemption(reqCtx, actor, service.RedemptionArgs{
		Amount: params.Amount,
		Remark: params.Remark,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &RedemptionResponse{
		ID:          t.ID,
		Utorid:      t.Utorid,
		Type:        t.Type,
		Amount:      t.Points,
		Remark:      t.Remark,
		CreatedBy:   t.CreatedByUtorid,
		ProcessedBy: t.ProcessedByUtorid,
	})
}

// Index GET RouteGroup + MyTransactionsRoute. Свои транзакции отдаются без полей, видимых только менеджерам.
func (h *UserTransactionsHandler) Index(c *gin.Context) {
	actor := getActorFromContext(c)

	var params TransactionsQueryParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	page, err := h.querySvs.ListMine(reqCtx, actor, params.toServiceQuery())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &TransactionsListResponse{
		Count:   page.Count,
		Results: service.ProjectAll(page.Results, domain.RoleRegular),
	})
}
