package dataset

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const validCSV = `order_id,product_category,quantity,unit_price,purchase_date,feedback_text
1001,Electronics,2,1200.50,2025-11-01,Great laptop!
1002,Fashion,1,89.99,2025-11-02,
1003,Home Appliances,3,150.00,2025-11-03,Arrived late
`

func TestLoad(t *testing.T) {
	records, err := Load(strings.NewReader(validCSV))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, int64(1001), records[0].OrderID)
	assert.Equal(t, "Electronics", records[0].ProductCategory)
	assert.Equal(t, 2, records[0].Quantity)
	assert.Equal(t, 1200.50, records[0].UnitPrice)
	assert.Equal(t, "2025-11-01", records[0].PurchaseDate.Format("2006-01-02"))
	assert.Equal(t, "Great laptop!", records[0].FeedbackText)

	assert.Empty(t, records[1].FeedbackText)
}

func TestLoad_RejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{
			name: "wrong header",
			csv:  "id,category,qty,price,date,feedback\n1,Electronics,1,10,2025-11-01,ok\n",
		},
		{
			name: "missing column",
			csv:  "order_id,product_category,quantity,unit_price,purchase_date\n1,Electronics,1,10,2025-11-01\n",
		},
		{
			name: "non-numeric order id",
			csv:  "order_id,product_category,quantity,unit_price,purchase_date,feedback_text\nabc,Electronics,1,10,2025-11-01,ok\n",
		},
		{
			name: "malformed date",
			csv:  "order_id,product_category,quantity,unit_price,purchase_date,feedback_text\n1,Electronics,1,10,01/11/2025,ok\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.csv))
			assert.Error(t, err)
		})
	}
}

// A single bad row rejects the whole dataset: partial loads would leave the
// aggregate views inconsistent.
func TestLoad_IntegrityViolations(t *testing.T) {
	tests := []struct {
		name     string
		csv      string
		expected error
	}{
		{
			name: "duplicate order id",
			csv: "order_id,product_category,quantity,unit_price,purchase_date,feedback_text\n" +
				"1,Electronics,1,10,2025-11-01,ok\n" +
				"1,Fashion,1,20,2025-11-02,ok\n",
			expected: domain.ErrDuplicateOrderID,
		},
		{
			name: "zero quantity",
			csv: "order_id,product_category,quantity,unit_price,purchase_date,feedback_text\n" +
				"1,Electronics,0,10,2025-11-01,ok\n",
			expected: domain.ErrInvalidQuantity,
		},
		{
			name: "negative unit price",
			csv: "order_id,product_category,quantity,unit_price,purchase_date,feedback_text\n" +
				"1,Electronics,1,-5,2025-11-01,ok\n",
			expected: domain.ErrNegativeUnitPrice,
		},
		{
			name: "empty purchase date",
			csv: "order_id,product_category,quantity,unit_price,purchase_date,feedback_text\n" +
				"1,Electronics,1,10,,ok\n",
			expected: domain.ErrInvalidPurchaseDate,
		},
		{
			name: "empty category",
			csv: "order_id,product_category,quantity,unit_price,purchase_date,feedback_text\n" +
				"1,,1,10,2025-11-01,ok\n",
			expected: domain.ErrMissingCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.csv))
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.expected)

			var integrityErr *domain.IntegrityError
			assert.ErrorAs(t, err, &integrityErr)
		})
	}
}
