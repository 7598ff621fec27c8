// Package dataset loads sale records from CSV sources and enforces the
// integrity rules before a snapshot is accepted.
package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-insights-api/internal/domain"
	"github.com/vfg2006/sales-insights-api/pkg/utils"
)

// Expected CSV header, matching the seed dataset layout.
var expectedHeader = []string{"order_id", "product_category", "quantity", "unit_price", "purchase_date", "feedback_text"}

// Load parses sale records from CSV and validates the resulting dataset.
// Any integrity violation rejects the whole dataset.
func Load(r io.Reader) ([]domain.SaleRecord, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read CSV header")
	}

	if err := validateHeader(header); err != nil {
		return nil, err
	}

	records := make([]domain.SaleRecord, 0)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to read CSV row")
		}

		record, err := parseRow(row)
		if err != nil {
			return nil, errors.Wrapf(err, "row %d", len(records)+1)
		}
		records = append(records, record)
	}

	if err := domain.ValidateDataset(records); err != nil {
		return nil, err
	}

	return records, nil
}

func validateHeader(header []string) error {
	if len(header) != len(expectedHeader) {
		return errors.Errorf("unexpected CSV header: got %d columns, want %d", len(header), len(expectedHeader))
	}
	for i, name := range expectedHeader {
		if header[i] != name {
			return errors.Errorf("unexpected CSV column %d: got %q, want %q", i, header[i], name)
		}
	}
	return nil
}

func parseRow(row []string) (domain.SaleRecord, error) {
	if len(row) != len(expectedHeader) {
		return domain.SaleRecord{}, errors.Errorf("unexpected column count: %d", len(row))
	}

	orderID, err := strconv.ParseInt(row[0], 10, 64)
	if err != nil {
		return domain.SaleRecord{}, errors.Wrap(err, "invalid order_id")
	}

	quantity, err := strconv.Atoi(row[2])
	if err != nil {
		return domain.SaleRecord{}, errors.Wrap(err, "invalid quantity")
	}

	unitPrice, err := strconv.ParseFloat(row[3], 64)
	if err != nil {
		return domain.SaleRecord{}, errors.Wrap(err, "invalid unit_price")
	}

	// An empty date comes back as the zero time and is rejected by the
	// dataset validation.
	purchaseDate, err := utils.ParseDate(row[4])
	if err != nil {
		return domain.SaleRecord{}, errors.Wrap(err, "invalid purchase_date")
	}

	return domain.SaleRecord{
		OrderID:         orderID,
		ProductCategory: row[1],
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		PurchaseDate:    *purchaseDate,
		FeedbackText:    row[5],
	}, nil
}
