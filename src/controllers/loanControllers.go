package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ludoteca/ludoteca-backend/src/dtos"
	"github.com/ludoteca/ludoteca-backend/src/services"
)

type LoanController struct {
	service *services.LoanService
}

func NewLoanController(service *services.LoanService) *LoanController {
	return &LoanController{service: service}
}

// Checkout handles POST requests to loan a copy of a game to a user
func (c *LoanController) Checkout(ctx *gin.Context) {
	var dto dtos.CheckoutDTO
	if err := ctx.ShouldBindJSON(&dto); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	loan, err := c.service.Checkout(dto.GameId, dto.UserId, dto.Days)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMissingBorrower),
			errors.Is(err, services.ErrNoCopyAvailable):
			ctx.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Loan registered successfully",
		"loan":    loan,
	})
}

// Return handles PUT requests to close an active loan
func (c *LoanController) Return(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid loan ID"})
		return
	}

	loan, err := c.service.Return(id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoanNotFound):
			ctx.JSON(http.StatusNotFound, gin.H{"success": false, "error": err.Error()})
		case errors.Is(err, services.ErrAlreadyReturned):
			ctx.JSON(http.StatusConflict, gin.H{"success": false, "error": err.Error()})
		default:
			ctx.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Copy received and stock updated",
		"loan":    loan,
	})
}

// GetActiveLoans handles GET requests for the admin outstanding-loans view
func (c *LoanController) GetActiveLoans(ctx *gin.Context) {
	loans, err := c.service.GetActiveLoans()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, loans)
}

// GetLoanHistory handles GET requests for the admin completed-loans view
func (c *LoanController) GetLoanHistory(ctx *gin.Context) {
	loans, err := c.service.GetLoanHistory()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, loans)
}

// GetUserLoans handles GET requests for a member's own loan history
func (c *LoanController) GetUserLoans(ctx *gin.Context) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	loans, err := c.service.GetUserLoans(id)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, loans)
}
