package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

// StockRepo StockRepository implementation on PostgreSQL (usable with pool or tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository builds the stock adapter. Pass a pool or tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

// Get returns the current stock of a product at one location of a warehouse.
// A missing row reads as zero quantity.
func (r *StockRepo) Get(productID, warehouseID, location string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, location, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2 AND location = $3`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID, location).Scan(
		&s.ProductID, &s.WarehouseID, &s.Location, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Location: location, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return &s, nil
}

// GetForUpdate returns the stock and locks the row (SELECT FOR UPDATE).
func (r *StockRepo) GetForUpdate(productID, warehouseID, location string) (*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, location, quantity, updated_at
		FROM stock WHERE product_id = $1 AND warehouse_id = $2 AND location = $3
		FOR UPDATE`
	var s entity.Stock
	err := r.q.QueryRow(context.Background(), query, productID, warehouseID, location).Scan(
		&s.ProductID, &s.WarehouseID, &s.Location, &s.Quantity, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &entity.Stock{ProductID: productID, WarehouseID: warehouseID, Location: location, Quantity: decimal.Zero}, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return &s, nil
}

// Upsert inserts or updates the quantity (by product, warehouse and location).
func (r *StockRepo) Upsert(stock *entity.Stock) error {
	query := `
		INSERT INTO stock (product_id, warehouse_id, location, quantity, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (product_id, warehouse_id, location)
		DO UPDATE SET quantity = EXCLUDED.quantity, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query, stock.ProductID, stock.WarehouseID, stock.Location, stock.Quantity)
	if err != nil {
		return fmt.Errorf("upsert stock: %w", err)
	}
	return nil
}

// ListByWarehouse returns all stock rows of a warehouse at one location.
func (r *StockRepo) ListByWarehouse(warehouseID, location string) ([]*entity.Stock, error) {
	query := `
		SELECT product_id, warehouse_id, location, quantity, updated_at
		FROM stock WHERE warehouse_id = $1 AND location = $2 ORDER BY product_id`
	rows, err := r.q.Query(context.Background(), query, warehouseID, location)
	if err != nil {
		return nil, fmt.Errorf("list stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		var s entity.Stock
		if err := rows.Scan(&s.ProductID, &s.WarehouseID, &s.Location, &s.Quantity, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
