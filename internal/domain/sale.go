package domain

import (
	"errors"
	"fmt"
	"time"
)

// Integrity errors detected while loading a dataset. A dataset that fails
// validation is rejected as a whole; partial loads would break the view
// consistency guarantees.
var (
	ErrDuplicateOrderID    = errors.New("duplicate order ID")
	ErrInvalidOrderID      = errors.New("order ID must be positive")
	ErrInvalidQuantity     = errors.New("quantity must be positive")
	ErrNegativeUnitPrice   = errors.New("unit price must not be negative")
	ErrMissingCategory     = errors.New("product category is required")
	ErrInvalidPurchaseDate = errors.New("purchase date is required")
)

// SaleRecord is a single sale event. FeedbackText is optional free text left
// by the customer and is the input for sentiment classification.
type SaleRecord struct {
	OrderID         int64     `json:"order_id"`
	ProductCategory string    `json:"product_category"`
	Quantity        int       `json:"quantity"`
	UnitPrice       float64   `json:"unit_price"`
	PurchaseDate    time.Time `json:"purchase_date"`
	FeedbackText    string    `json:"feedback_text,omitempty"`
}

// LineRevenue returns the revenue contributed by this record.
func (s SaleRecord) LineRevenue() float64 {
	return float64(s.Quantity) * s.UnitPrice
}

// IntegrityError wraps a validation failure with the offending record.
type IntegrityError struct {
	Err     error
	OrderID int64
	Row     int
}

func (e *IntegrityError) Error() string {
	return fmt.Sprintf("dataset integrity violation at row %d (order %d): %s", e.Row, e.OrderID, e.Err.Error())
}

func (e *IntegrityError) Unwrap() error {
	return e.Err
}

// ValidateDataset checks the invariants every snapshot must hold before it is
// accepted: unique positive order IDs, positive quantities, non-negative
// prices, non-empty categories and purchase dates.
func ValidateDataset(records []SaleRecord) error {
	seen := make(map[int64]struct{}, len(records))

	for i, r := range records {
		switch {
		case r.OrderID <= 0:
			return &IntegrityError{Err: ErrInvalidOrderID, OrderID: r.OrderID, Row: i}
		case r.Quantity <= 0:
			return &IntegrityError{Err: ErrInvalidQuantity, OrderID: r.OrderID, Row: i}
		case r.UnitPrice < 0:
			return &IntegrityError{Err: ErrNegativeUnitPrice, OrderID: r.OrderID, Row: i}
		case r.ProductCategory == "":
			return &IntegrityError{Err: ErrMissingCategory, OrderID: r.OrderID, Row: i}
		case r.PurchaseDate.IsZero():
			return &IntegrityError{Err: ErrInvalidPurchaseDate, OrderID: r.OrderID, Row: i}
		}

		if _, dup := seen[r.OrderID]; dup {
			return &IntegrityError{Err: ErrDuplicateOrderID, OrderID: r.OrderID, Row: i}
		}
		seen[r.OrderID] = struct{}{}
	}

	return nil
}
