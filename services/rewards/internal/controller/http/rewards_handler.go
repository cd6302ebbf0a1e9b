package http

import (
	"errors"
	"net/http"

	"gigconnect/services/rewards/internal/usecase"

	"github.com/gin-gonic/gin"
)

type RewardsHandler struct {
	rewardsUseCase usecase.RewardsUseCase
}

func NewRewardsHandler(rewardsUseCase usecase.RewardsUseCase) *RewardsHandler {
	return &RewardsHandler{
		rewardsUseCase: rewardsUseCase,
	}
}

type RateUserRequest struct {
	Rating float64 `json:"rating" binding:"required"`
}

type GrantCoinsRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Amount int    `json:"amount" binding:"required"`
	Reason string `json:"reason,omitempty"`
}

// RateUser godoc
// @Summary      Rate a user
// @Description  Record a 1-5 rating for another user and recompute their average
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "User ID to rate"
// @Param        request body RateUserRequest true "Rating value"
// @Success      200  {object}  entity.RatingSummary
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /users/{id}/rate [post]
func (h *RewardsHandler) RateUser(c *gin.Context) {
	raterID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req RateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.rewardsUseCase.AddRating(raterID.(string), c.Param("id"), req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidRating), errors.Is(err, usecase.ErrSelfRating):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, summary)
}

// ConvertRatings godoc
// @Summary      Convert ratings to coins
// @Description  Cash out the current user's rating history as coins
// @Tags         rewards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  entity.ConversionResult
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /convert [post]
func (h *RewardsHandler) ConvertRatings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	result, err := h.rewardsUseCase.ConvertRatings(userID.(string))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrNoRatings):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListTransactions godoc
// @Summary      List the current user's transactions
// @Description  List the user's coin ledger entries, newest first
// @Tags         rewards
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   entity.Transaction
// @Failure      401  {object}  map[string]string
// @Router       /transactions [get]
func (h *RewardsHandler) ListTransactions(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txns, err := h.rewardsUseCase.GetTransactions(userID.(string))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, txns)
}

// GetTransaction godoc
// @Summary      Get a transaction
// @Description  Get a single ledger entry; only the owner may read it
// @Tags         rewards
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Transaction ID"
// @Success      200  {object}  entity.Transaction
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /transactions/{id} [get]
func (h *RewardsHandler) GetTransaction(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	txn, err := h.rewardsUseCase.GetTransaction(userID.(string), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrTransactionNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrNotTransactionOwner):
			c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, txn)
}

// GrantCoins godoc
// @Summary      Grant coins to a user
// @Description  Credit coins to a user's balance; admin only
// @Tags         rewards
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body GrantCoinsRequest true "Grant details"
// @Success      200  {object}  entity.Transaction
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /admin/grants [post]
func (h *RewardsHandler) GrantCoins(c *gin.Context) {
	var req GrantCoinsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	txn, err := h.rewardsUseCase.GrantCoins(req.UserID, req.Amount, req.Reason)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrInvalidAmount):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, usecase.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, txn)
}
