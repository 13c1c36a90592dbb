package database

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/titishya/fastfood-app/models"
	"github.com/titishya/fastfood-app/utils"
)

// OrderStore persists the whole order collection as a single JSON file.
// The collection is small, so every mutation rewrites the file in full; the
// caller (OrderService) serializes writers.
type OrderStore struct {
	path string
}

// NewOrderStore creates the store and makes sure the backing file exists so
// the first read never races file creation.
func NewOrderStore(path string) (*OrderStore, error) {
	s := &OrderStore{path: path}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.SaveAll([]models.Order{}); err != nil {
			return nil, fmt.Errorf("init order store: %w", err)
		}
	}
	return s, nil
}

// LoadAll returns the persisted collection, newest first. A missing or
// corrupt file is treated as an empty collection, not a fatal condition.
func (s *OrderStore) LoadAll() []models.Order {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			utils.ErrorLogger.Printf("Error reading %s: %v", s.path, err)
		}
		return []models.Order{}
	}

	var orders []models.Order
	if err := json.Unmarshal(data, &orders); err != nil {
		utils.ErrorLogger.Printf("Corrupt order file %s, treating as empty: %v", s.path, err)
		return []models.Order{}
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders
}

// SaveAll atomically replaces the persisted collection. The new content is
// written to a temp file in the same directory and renamed over the old one,
// so a concurrent reader sees either the old or the new file, never a mix.
func (s *OrderStore) SaveAll(orders []models.Order) error {
	data, err := json.MarshalIndent(orders, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal orders: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".orders-*.json")
	if err != nil {
		return fmt.Errorf("create temp order file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write orders: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp order file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace order file: %w", err)
	}
	return nil
}
