package inventory

import (
	"context"
	"io"

	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// TxRunner runs a function inside a DB transaction, passing repositories bound
// to that tx. This is what makes the conservation invariant hold: source
// decrement, destination increment and the movement record commit together or
// not at all.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
	) error) error
}

// RequestTxRunner extends the movement transaction with the request repository,
// so approving a request and executing its warehouse send are one transaction.
type RequestTxRunner interface {
	RunRequest(ctx context.Context, fn func(
		movRepo repository.StockMovementRepository,
		stockRepo repository.StockRepository,
		requestRepo repository.ProductRequestRepository,
	) error) error
}

// EvidenceStore persists uploaded slip/receipt images and returns a reference.
type EvidenceStore interface {
	Save(ctx context.Context, filename string, r io.Reader) (string, error)
}
