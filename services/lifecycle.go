package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/titishya/fastfood-app/models"
)

// PlatformFee is the fixed surcharge (₹2) added to every order on top of the
// item subtotal.
const PlatformFee = 2.0

// CreateOrderRequest carries everything the customer page sends at checkout.
type CreateOrderRequest struct {
	CustomerName string             `json:"customerName"`
	TableNumber  string             `json:"tableNumber"`
	Language     string             `json:"language"`
	Items        []models.OrderItem `json:"items"`
}

// newOrder validates the request and builds a fresh order with computed
// totals. It does not persist anything.
func newOrder(req CreateOrderRequest) (models.Order, error) {
	if len(req.Items) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	var subtotal float64
	for _, item := range req.Items {
		if item.Quantity <= 0 || item.UnitPrice < 0 {
			return models.Order{}, ErrInvalidItem
		}
		subtotal += item.LineTotal()
	}

	name := req.CustomerName
	if name == "" {
		name = "Guest"
	}
	language := req.Language
	if language == "" {
		language = "English"
	}

	return models.Order{
		ID:            uuid.NewString(),
		CustomerName:  name,
		TableNumber:   req.TableNumber,
		Language:      language,
		Items:         req.Items,
		Subtotal:      subtotal,
		PlatformFee:   PlatformFee,
		Total:         subtotal + PlatformFee,
		PaymentStatus: false,
		Status:        models.StatusReceived,
		CreatedAt:     time.Now(),
	}, nil
}

// canTransition is the single place transition rules live. The running system
// deliberately allows any status to be written at any time so staff can
// correct mistakes from the dashboard; a transition table would go here.
func canTransition(from, to string) bool {
	return true
}

// applyStatus writes newStatus onto the order. The first transition into
// delivered stamps deliveredAt; the stamp is never overwritten afterwards.
func applyStatus(order *models.Order, newStatus string) error {
	if !models.IsValidStatus(newStatus) {
		return ErrInvalidStatus
	}
	if !canTransition(order.Status, newStatus) {
		return ErrInvalidStatus
	}

	order.Status = newStatus
	if newStatus == models.StatusDelivered && order.DeliveredAt == nil {
		now := time.Now()
		order.DeliveredAt = &now
	}
	return nil
}

// confirmPayment marks the order as paid. Idempotent: payment status only
// ever moves from false to true.
func confirmPayment(order *models.Order) {
	order.PaymentStatus = true
}
