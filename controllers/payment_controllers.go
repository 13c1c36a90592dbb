package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/titishya/fastfood-app/services"
	"github.com/titishya/fastfood-app/utils"
)

type PaymentController struct {
	Svc *services.OrderService
}

func NewPaymentController(svc *services.OrderService) *PaymentController {
	return &PaymentController{Svc: svc}
}

// ConfirmPayment -> simulated payment step. The customer page calls this
// after showing the QR; there is no gateway behind it.
func (pc *PaymentController) ConfirmPayment(c *gin.Context) {
	var body struct {
		OrderID string `json:"orderId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := pc.Svc.ConfirmPayment(body.OrderID)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.RespondError(c, http.StatusNotFound, err)
			return
		}
		utils.ErrorLogger.Printf("Error confirming payment for %s: %v", body.OrderID, err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Server error"))
		return
	}

	c.JSON(http.StatusOK, order)
}
