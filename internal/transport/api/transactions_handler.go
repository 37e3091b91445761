package api

import (
	"context"
	"net/http"

	"github.com/fsdevblog/points-ledger/internal/domain"
	"github.com/fsdevblog/points-ledger/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type TransactionsHandler struct {
	txSvs       TransactionServicer
	reversalSvs ReversalServicer
	querySvs    QueryServicer
}

func NewTransactionsHandler(
	txSvs TransactionServicer,
	reversalSvs ReversalServicer,
	querySvs QueryServicer,
) *TransactionsHandler {
	return &TransactionsHandler{
		txSvs:       txSvs,
		reversalSvs: reversalSvs,
		querySvs:    querySvs,
	}
}

type CreateTransactionParams struct {
	Utorid       string           `json:"utorid" binding:"required,utorid"`
	Type         string           `json:"type" binding:"required,oneof=purchase adjustment"`
	Spent        *decimal.Decimal `json:"spent"`
	Amount       *int64           `json:"amount"`
	RelatedID    *int64           `json:"relatedId"`
	PromotionIDs []int64          `json:"promotionIds"`
	Remark       string           `json:"remark"`
}

type PurchaseResponse struct {
	ID           int64                  `json:"id"`
	Utorid       string                 `json:"utorid"`
	Type         domain.TransactionType `json:"type"`
	Spent        decimal.Decimal        `json:"spent"`
	Earned       int64                  `json:"earned"`
	PromotionIDs []int64                `json:"promotionIds"`
	Remark       string                 `json:"remark"`
	CreatedBy    string                 `json:"createdBy"`
}

type AdjustmentResponse struct {
	ID           int64                  `json:"id"`
	Utorid       string                 `json:"utorid"`
	Amount       int64                  `json:"amount"`
	Type         domain.TransactionType `json:"type"`
	RelatedID    *int64                 `json:"relatedId"`
	PromotionIDs []int64                `json:"promotionIds"`
	Remark       string                 `json:"remark"`
	CreatedBy    string                 `json:"createdBy"`
}

// Create POST RouteGroup + TransactionsRoute. Покупку создает кассир и выше, корректировку - менеджер и выше.
func (h *TransactionsHandler) Create(c *gin.Context) {
	actor := getActorFromContext(c)

	var params CreateTransactionParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if domain.TransactionType(params.Type) == domain.TransactionAdjustment {
		if !actor.Role.AtLeast(domain.RoleManager) {
			abortWithServiceError(c, domain.ErrForbidden)
			return
		}
		h.createAdjustment(reqCtx, c, actor, &params)
		return
	}
	h.createPurchase(reqCtx, c, actor, &params)
}

func (h *TransactionsHandler) createPurchase(
	ctx context.Context,
	c *gin.Context,
	actor domain.Actor,
	params *CreateTransactionParams,
) {
	spent := decimal.Zero
	if params.Spent != nil {
		spent = *params.Spent
	}

	res, err := h.txSvs.CreatePurchase(ctx, actor, service.PurchaseArgs{
		Utorid:       params.Utorid,
		Spent:        spent,
		PromotionIDs: params.PromotionIDs,
		Remark:       params.Remark,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	t := res.Transaction
	c.JSON(http.StatusCreated, &PurchaseResponse{
		ID:           t.ID,
		Utorid:       t.Utorid,
		Type:         t.Type,
		Spent:        t.Spent.Decimal,
		Earned:       res.Earned,
		PromotionIDs: t.PromotionIDs,
		Remark:       t.Remark,
		CreatedBy:    t.CreatedByUtorid,
	})
}

func (h *TransactionsHandler) createAdjustment(
	ctx context.Context,
	c *gin.Context,
	actor domain.Actor,
	params *CreateTransactionParams,
) {
	args := service.AdjustmentArgs{
		Utorid:       params.Utorid,
		PromotionIDs: params.PromotionIDs,
		Remark:       params.Remark,
	}
	if params.Amount != nil {
		args.Amount = *params.Amount
	}
	if params.RelatedID != nil {
		args.RelatedID = *params.RelatedID
	}

	t, err := h.txSvs.CreateAdjustment(ctx, actor, args)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, &AdjustmentResponse{
		ID:           t.ID,
		Utorid:       t.Utorid,
		Amount:       t.Points,
		Type:         t.Type,
		RelatedID:    t.RelatedID,
		PromotionIDs: t.PromotionIDs,
		Remark:       t.Remark,
		CreatedBy:    t.CreatedByUtorid,
	})
}

// Index GET RouteGroup + TransactionsRoute.
func (h *TransactionsHandler) Index(c *gin.Context) {
	actor := getActorFromContext(c)

	var params TransactionsQueryParams
	if bindErr := c.ShouldBindQuery(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	page, err := h.querySvs.ListAll(reqCtx, actor, params.toServiceQuery())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &TransactionsListResponse{
		Count:   page.Count,
		Results: service.ProjectAll(page.Results, actor.Role),
	})
}

// Show GET RouteGroup + TransactionRoute.
func (h *TransactionsHandler) Show(c *gin.Context) {
	actor := getActorFromContext(c)
	id, ok := pathID(c, TransactionIDParam)
	if !ok {
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := h.querySvs.GetByID(reqCtx, actor, id)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, service.Project(*t, actor.Role))
}

type SuspiciousParams struct {
	Suspicious *bool `json:"suspicious" binding:"required"`
}

// SetSuspicious PATCH RouteGroup + TransactionSuspiciousRoute.
func (h *TransactionsHandler) SetSuspicious(c *gin.Context) {
	actor := getActorFromContext(c)
	id, ok := pathID(c, TransactionIDParam)
	if !ok {
		return
	}

	var params SuspiciousParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	res, err := h.reversalSvs.SetSuspicious(reqCtx, actor, id, *params.Suspicious)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}
	if !res.Changed {
		c.JSON(http.StatusOK, gin.H{"message": "No changes made"})
		return
	}
	c.JSON(http.StatusOK, service.Project(*res.Transaction, actor.Role))
}

type ProcessedParams struct {
	Processed *bool `json:"processed" binding:"required"`
}

type ProcessedResponse struct {
	ID          int64                  `json:"id"`
	Utorid      string                 `json:"utorid"`
	Type        domain.TransactionType `json:"type"`
	ProcessedBy string                 `json:"processedBy"`
	Redeemed    int64                  `json:"redeemed"`
	Remark      string                 `json:"remark"`
	CreatedBy   string                 `json:"createdBy"`
}

// Process PATCH RouteGroup + TransactionProcessedRoute.
func (h *TransactionsHandler) Process(c *gin.Context) {
	actor := getActorFromContext(c)
	id, ok := pathID(c, TransactionIDParam)
	if !ok {
		return
	}

	var params ProcessedParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).SetType(gin.ErrorTypeBind)
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	t, err := h.reversalSvs.ProcessRedemption(reqCtx, actor, id, *params.Processed)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, &ProcessedResponse{
		ID:          t.ID,
		Utorid:      t.Utorid,
		Type:        t.Type,
		ProcessedBy: actor.Utorid,
		Redeemed:    t.Points,
		Remark:      t.Remark,
		CreatedBy:   t.CreatedByUtorid,
	})
}
