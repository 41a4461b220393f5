package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

var _ repository.ProductRequestRepository = (*ProductRequestRepo)(nil)

// ProductRequestRepo adapter for inter-warehouse stock requests. Pass pool or tx (Querier).
type ProductRequestRepo struct {
	q Querier
}

// NewProductRequestRepository builds the adapter.
func NewProductRequestRepository(q Querier) *ProductRequestRepo {
	return &ProductRequestRepo{q: q}
}

const requestColumns = `id, product_id, quantity, from_warehouse_id, to_warehouse_id,
	bank_slip, status, requested_by, COALESCE(resolved_by, ''), resolved_at, created_at`

// Create persists a new pending request.
func (r *ProductRequestRepo) Create(req *entity.ProductRequest) error {
	query := `
		INSERT INTO product_requests
			(id, product_id, quantity, from_warehouse_id, to_warehouse_id,
			 bank_slip, status, requested_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(context.Background(), query,
		req.ID, req.ProductID, req.Quantity, req.FromWarehouseID, req.ToWarehouseID,
		req.BankSlip, req.Status, req.RequestedBy, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert product request: %w", err)
	}
	return nil
}

// GetByID returns a request by ID, nil when absent.
func (r *ProductRequestRepo) GetByID(id string) (*entity.ProductRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM product_requests WHERE id = $1`
	return r.one(query, id)
}

// GetForUpdate returns a request and locks its row so the status transition is
// race-free.
func (r *ProductRequestRepo) GetForUpdate(id string) (*entity.ProductRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM product_requests WHERE id = $1 FOR UPDATE`
	return r.one(query, id)
}

// UpdateStatus stores the terminal status and resolver.
func (r *ProductRequestRepo) UpdateStatus(req *entity.ProductRequest) error {
	query := `
		UPDATE product_requests SET status = $2, resolved_by = $3, resolved_at = $4
		WHERE id = $1`
	_, err := r.q.Exec(context.Background(), query, req.ID, req.Status, req.ResolvedBy, req.ResolvedAt)
	if err != nil {
		return fmt.Errorf("update product request: %w", err)
	}
	return nil
}

// List returns requests filtered by status and/or warehouse (either end), newest first.
func (r *ProductRequestRepo) List(status, warehouseID string, limit, offset int) ([]*entity.ProductRequest, error) {
	query := `
		SELECT ` + requestColumns + ` FROM product_requests
		WHERE ($1 = '' OR status = $1)
		  AND ($2 = '' OR from_warehouse_id = $2 OR to_warehouse_id = $2)
		ORDER BY created_at DESC LIMIT $3 OFFSET $4`
	rows, err := r.q.Query(context.Background(), query, status, warehouseID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list product requests: %w", err)
	}
	defer rows.Close()
	var list []*entity.ProductRequest
	for rows.Next() {
		var req entity.ProductRequest
		if err := rows.Scan(
			&req.ID, &req.ProductID, &req.Quantity, &req.FromWarehouseID, &req.ToWarehouseID,
			&req.BankSlip, &req.Status, &req.RequestedBy, &req.ResolvedBy, &req.ResolvedAt, &req.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan product request: %w", err)
		}
		list = append(list, &req)
	}
	return list, rows.Err()
}

func (r *ProductRequestRepo) one(query string, args ...any) (*entity.ProductRequest, error) {
	var req entity.ProductRequest
	err := r.q.QueryRow(context.Background(), query, args...).Scan(
		&req.ID, &req.ProductID, &req.Quantity, &req.FromWarehouseID, &req.ToWarehouseID,
		&req.BankSlip, &req.Status, &req.RequestedBy, &req.ResolvedBy, &req.ResolvedAt, &req.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product request: %w", err)
	}
	return &req, nil
}
