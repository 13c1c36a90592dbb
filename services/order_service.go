package services

import (
	"sync"

	"github.com/titishya/fastfood-app/database"
	"github.com/titishya/fastfood-app/models"
	"github.com/titishya/fastfood-app/utils"
)

// Broadcaster fans an order event out to every connected dashboard. Delivery
// is best effort; implementations must never block the mutation path.
type Broadcaster interface {
	BroadcastNewOrder(order models.Order)
	BroadcastOrderUpdate(order models.Order)
}

// OrderService is the composition root for the order lifecycle: it validates
// intents, persists through the store and notifies dashboards. Every
// load-mutate-save cycle runs under one lock because the store replaces the
// whole collection on each write; two unserialized writers would lose updates.
type OrderService struct {
	store *database.OrderStore
	hub   Broadcaster
	mu    sync.RWMutex
}

func NewOrderService(store *database.OrderStore, hub Broadcaster) *OrderService {
	return &OrderService{store: store, hub: hub}
}

// PlaceOrder creates an order from the checkout request, prepends it to the
// collection (newest first) and announces it to the dashboards.
func (s *OrderService) PlaceOrder(req CreateOrderRequest) (models.Order, error) {
	order, err := newOrder(req)
	if err != nil {
		return models.Order{}, err
	}

	s.mu.Lock()
	orders := s.store.LoadAll()
	orders = append([]models.Order{order}, orders...)
	err = s.store.SaveAll(orders)
	s.mu.Unlock()
	if err != nil {
		return models.Order{}, err
	}

	utils.InfoLogger.Printf("Order %s placed: %s, table %q, total %s",
		order.ID, order.CustomerName, order.TableNumber, utils.FormatRupee(order.Total))
	s.hub.BroadcastNewOrder(order)
	return order, nil
}

// ListOrders returns the collection newest first. A non-empty date
// (YYYY-MM-DD) keeps only orders created on that local calendar date.
func (s *OrderService) ListOrders(date string) []models.Order {
	s.mu.RLock()
	orders := s.store.LoadAll()
	s.mu.RUnlock()

	if date == "" {
		return orders
	}
	filtered := make([]models.Order, 0, len(orders))
	for _, o := range orders {
		if o.CreatedAt.Format("2006-01-02") == date {
			filtered = append(filtered, o)
		}
	}
	return filtered
}

// GetOrder -> single order by id.
func (s *OrderService) GetOrder(id string) (models.Order, error) {
	s.mu.RLock()
	orders := s.store.LoadAll()
	s.mu.RUnlock()

	for _, o := range orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, ErrOrderNotFound
}

// SetStatus applies a status change to the order with the given id and
// persists the result. Unknown ids leave the collection untouched.
func (s *OrderService) SetStatus(id, newStatus string) (models.Order, error) {
	order, err := s.mutate(id, func(o *models.Order) error {
		return applyStatus(o, newStatus)
	})
	if err != nil {
		return models.Order{}, err
	}

	utils.InfoLogger.Printf("Order %s status -> %s", order.ID, order.Status)
	s.hub.BroadcastOrderUpdate(order)
	return order, nil
}

// ConfirmPayment marks the order as paid and persists the result.
func (s *OrderService) ConfirmPayment(id string) (models.Order, error) {
	order, err := s.mutate(id, func(o *models.Order) error {
		confirmPayment(o)
		return nil
	})
	if err != nil {
		return models.Order{}, err
	}

	utils.InfoLogger.Printf("Order %s payment confirmed", order.ID)
	s.hub.BroadcastOrderUpdate(order)
	return order, nil
}

// mutate runs the load-find-change-save cycle for one order as a critical
// section. The write back happens only when fn succeeds.
func (s *OrderService) mutate(id string, fn func(*models.Order) error) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	orders := s.store.LoadAll()
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		if err := fn(&orders[i]); err != nil {
			return models.Order{}, err
		}
		if err := s.store.SaveAll(orders); err != nil {
			return models.Order{}, err
		}
		return orders[i], nil
	}
	return models.Order{}, ErrOrderNotFound
}
