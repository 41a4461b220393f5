package reports

import (
	"context"

	"github.com/stockflow/stockflow-api/internal/domain"
	"github.com/stockflow/stockflow-api/internal/domain/entity"
	"github.com/stockflow/stockflow-api/internal/domain/repository"
)

// SoldRecordRow one line of the sold-records report: a sale movement joined
// with its product.
type SoldRecordRow struct {
	Movement *entity.StockMovement
	Product  *entity.Product
}

// SoldRecordsPDFGenerator renders the sold-records table as a PDF document.
type SoldRecordsPDFGenerator interface {
	GenerateSoldRecordsPDF(ctx context.Context, warehouse *entity.Warehouse, rows []SoldRecordRow) ([]byte, error)
}

// SalesReportUseCase builds the printable sold-records report.
type SalesReportUseCase struct {
	movementRepo  repository.StockMovementRepository
	productRepo   repository.ProductRepository
	warehouseRepo repository.WarehouseRepository
	pdfGen        SoldRecordsPDFGenerator
}

// NewSalesReportUseCase builds the use case.
func NewSalesReportUseCase(
	movementRepo repository.StockMovementRepository,
	productRepo repository.ProductRepository,
	warehouseRepo repository.WarehouseRepository,
	pdfGen SoldRecordsPDFGenerator,
) *SalesReportUseCase {
	return &SalesReportUseCase{
		movementRepo:  movementRepo,
		productRepo:   productRepo,
		warehouseRepo: warehouseRepo,
		pdfGen:        pdfGen,
	}
}

const reportMaxRows = 500 // one report page set; older sales need a date filter, not a bigger PDF

// SoldRecordsPDF renders the most recent sales of a warehouse as a PDF.
func (uc *SalesReportUseCase) SoldRecordsPDF(ctx context.Context, warehouseID string) ([]byte, error) {
	warehouse, err := uc.warehouseRepo.GetByID(warehouseID)
	if err != nil {
		return nil, err
	}
	if warehouse == nil {
		return nil, domain.ErrNotFound
	}
	movements, err := uc.movementRepo.ListByType(entity.MovementSale, warehouseID, reportMaxRows, 0)
	if err != nil {
		return nil, err
	}

	// Resolve each product once.
	products := make(map[string]*entity.Product)
	rows := make([]SoldRecordRow, 0, len(movements))
	for _, mov := range movements {
		p, ok := products[mov.ProductID]
		if !ok {
			p, err = uc.productRepo.GetByID(mov.ProductID)
			if err != nil {
				return nil, err
			}
			products[mov.ProductID] = p
		}
		rows = append(rows, SoldRecordRow{Movement: mov, Product: p})
	}

	return uc.pdfGen.GenerateSoldRecordsPDF(ctx, warehouse, rows)
}
