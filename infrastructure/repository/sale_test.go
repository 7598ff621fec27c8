package repository

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

func saleFixture(orderID int64, category string) domain.SaleRecord {
	return domain.SaleRecord{
		OrderID:         orderID,
		ProductCategory: category,
		Quantity:        1,
		UnitPrice:       10,
		PurchaseDate:    time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestInsertSalesStatement(t *testing.T) {
	query, args, err := insertSalesStatement([]domain.SaleRecord{
		saleFixture(1, "Electronics"),
		saleFixture(2, "Fashion"),
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO sales"))
	assert.Equal(t, 2, strings.Count(query, "($"))
	assert.Len(t, args, 12) // 6 columns per record
}

// squirrel cannot render an INSERT without value sets; ReplaceDataset guards
// the empty snapshot before building the statement.
func TestInsertSalesStatement_EmptySnapshot(t *testing.T) {
	_, _, err := insertSalesStatement(nil)
	assert.Error(t, err)
}
