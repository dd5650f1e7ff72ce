// Package storage persists a pipeline result to the relational store.
package storage

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"freshmarket-system/internal/database/models"
	"freshmarket-system/internal/pipeline"
)

const insertBatchSize = 200

type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// LoadResult writes a full pipeline run in one transaction: dimensions
// first, then facts, then the inventory snapshot. Existing rows are cleared
// up front so re-running the load on the same input leaves identical
// tables.
func (s *Store) LoadResult(ctx context.Context, result *pipeline.Result) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Delete in reverse FK order.
		for _, model := range []interface{}{
			&models.Inventory{}, &models.Sale{}, &models.Customer{}, &models.Product{}, &models.City{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return fmt.Errorf("clearing previous load: %w", err)
			}
		}

		cities := make([]models.City, len(result.Cities))
		for i, c := range result.Cities {
			cities[i] = models.City{ID: c.ID, Name: c.Name}
		}
		if len(cities) > 0 {
			if err := tx.CreateInBatches(cities, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting cities: %w", err)
			}
		}

		products := make([]models.Product, len(result.Products))
		for i, p := range result.Products {
			products[i] = models.Product{ID: p.ID, Name: p.Name}
		}
		if len(products) > 0 {
			if err := tx.CreateInBatches(products, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting products: %w", err)
			}
		}

		customers := make([]models.Customer, len(result.Customers))
		for i, c := range result.Customers {
			customers[i] = models.Customer{ID: c.ID}
		}
		if len(customers) > 0 {
			if err := tx.CreateInBatches(customers, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting customers: %w", err)
			}
		}

		sales := make([]models.Sale, len(result.Sales))
		for i, sale := range result.Sales {
			sales[i] = models.Sale{
				ID:           sale.ID,
				CustomerID:   sale.CustomerID,
				CityID:       sale.CityID,
				ProductID:    sale.ProductID,
				OrderDate:    sale.OrderDate,
				DeliveryDate: sale.DeliveryDate,
				DeliveryDays: sale.DeliveryDays,
				Status:       string(sale.Status),
				Quantity:     sale.Quantity,
				UnitPrice:    sale.UnitPrice.StringFixed(2),
				Subtotal:     sale.Subtotal.StringFixed(2),
				StockInitial: sale.StockInitial,
				StockFinal:   sale.StockFinal,
			}
		}
		if len(sales) > 0 {
			if err := tx.CreateInBatches(sales, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting sales: %w", err)
			}
		}

		inventory := make([]models.Inventory, len(result.Inventory))
		for i, row := range result.Inventory {
			inventory[i] = models.Inventory{
				ProductID:    row.ProductID,
				CityID:       row.CityID,
				CurrentStock: row.CurrentStock,
			}
		}
		if len(inventory) > 0 {
			if err := tx.CreateInBatches(inventory, insertBatchSize).Error; err != nil {
				return fmt.Errorf("inserting inventory: %w", err)
			}
		}

		return nil
	})
}
