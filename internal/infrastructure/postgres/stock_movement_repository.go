package postgres

import (
	"context"
	"fmt"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.StockMovementRepository = (*StockMovementRepo)(nil)

// StockMovementRepo adapter for the append-only movement log. Pass pool or tx (Querier).
type StockMovementRepo struct {
	q Querier
}

// NewStockMovementRepository builds the adapter.
func NewStockMovementRepository(q Querier) *StockMovementRepo {
	return &StockMovementRepo{q: q}
}

// Create appends one movement record. Records are never updated or deleted.
func (r *StockMovementRepo) Create(mov *entity.StockMovement) error {
	query := `
		INSERT INTO stock_movements
			(id, type, product_id, quantity, from_warehouse_id, from_location,
			 to_warehouse_id, to_location, reference, evidence, remark, actor_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		mov.ID, mov.Type, mov.ProductID, mov.Quantity,
		mov.FromWarehouseID, mov.FromLocation,
		nullIfEmpty(mov.ToWarehouseID), nullIfEmpty(mov.ToLocation),
		mov.Reference, mov.Evidence, mov.Remark, mov.ActorID, mov.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert stock movement: %w", err)
	}
	return nil
}

// ListByType lists movements of one type, optionally filtered by warehouse
// (matches either end of the movement), newest first.
func (r *StockMovementRepo) ListByType(movementType, warehouseID string, limit, offset int) ([]*entity.StockMovement, error) {
	query := `
		SELECT id, type, product_id, quantity, from_warehouse_id, from_location,
		       COALESCE(to_warehouse_id, ''), COALESCE(to_location, ''),
		       reference, evidence, remark, actor_id, created_at
		FROM stock_movements
		WHERE type = $1 AND ($2 = '' OR from_warehouse_id = $2 OR to_warehouse_id = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, movementType, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list stock movements: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockMovement
	for rows.Next() {
		var m entity.StockMovement
		if err := rows.Scan(
			&m.ID, &m.Type, &m.ProductID, &m.Quantity, &m.FromWarehouseID, &m.FromLocation,
			&m.ToWarehouseID, &m.ToLocation, &m.Reference, &m.Evidence, &m.Remark, &m.ActorID, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan stock movement: %w", err)
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
