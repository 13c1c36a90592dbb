package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/titishya/fastfood-app/services"
	"github.com/titishya/fastfood-app/utils"
)

type OrderController struct {
	Svc *services.OrderService
}

func NewOrderController(svc *services.OrderService) *OrderController {
	return &OrderController{Svc: svc}
}

// CreateOrder -> checkout from the customer page. Returns the created order
// as-is; the page reads the id for its confirmation screen.
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req services.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Svc.PlaceOrder(req)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) || errors.Is(err, services.ErrInvalidItem) {
			utils.RespondError(c, http.StatusBadRequest, err)
			return
		}
		utils.ErrorLogger.Printf("Error placing order: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, errors.New("Server error"))
		return
	}

	c.JSON(http.StatusOK, order)
}

// GetOrders -> list orders, optionally filtered to one calendar day
// (?date=YYYY-MM-DD). The manager dashboard polls this on every update.
func (oc *OrderController) GetOrders(c *gin.Context) {
	date := c.Query("date")
	c.JSON(http.StatusOK, oc.Svc.ListOrders(date))
}

// GetOrderByID -> detail of one order.
func (oc *OrderController) GetOrderByID(c *gin.Context) {
	order, err := oc.Svc.GetOrder(c.Param("id"))
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, err)
		return
	}
	c.JSON(http.StatusOK, order)
}

// UpdateOrderStatus -> staff advance an order (preparing/delivered) or hide
// it (deleted) from the dashboard.
func (oc *OrderController) UpdateOrderStatus(c *gin.Context) {
	var body struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := oc.Svc.SetStatus(c.Param("id"), body.Status)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.RespondError(c, http.StatusNotFound, err)
		case errors.Is(err, services.ErrInvalidStatus):
			utils.RespondError(c, http.StatusBadRequest, err)
		default:
			utils.ErrorLogger.Printf("Error updating order %s: %v", c.Param("id"), err)
			utils.RespondError(c, http.StatusInternalServerError, errors.New("Server error"))
		}
		return
	}

	c.JSON(http.StatusOK, order)
}
