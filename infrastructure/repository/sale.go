package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const (
	salesTable = "sales"
)

// measureExpressions maps each declarative measure to its SQL expression.
// Every aggregation the engine supports is expressed here once, so the same
// request shape can be pushed down or evaluated in memory.
var measureExpressions = map[domain.Measure]string{
	domain.MeasureRevenue:    "SUM(quantity * unit_price)",
	domain.MeasureOrderCount: "COUNT(order_id)",
	domain.MeasureAvgPrice:   "AVG(unit_price)",
}

type SaleRepository interface {
	ListSales() ([]domain.SaleRecord, error)
	ReplaceDataset(ctx context.Context, records []domain.SaleRecord) error
	Aggregate(req domain.AggregateRequest) ([]domain.AggregateRow, error)
	TotalRevenue() (float64, error)
}

type saleRepository struct {
	conn *postgres.Connection
}

func NewSaleRepository(conn *postgres.Connection) SaleRepository {
	return &saleRepository{
		conn: conn,
	}
}

func (r *saleRepository) ListSales() ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("order_id, product_category, quantity, unit_price, purchase_date, feedback_text").
		From(salesTable).
		OrderBy("order_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.SaleRecord, 0)
	for rows.Next() {
		record, err := scanSale(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sale record: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failure during row iteration: %w", err)
	}

	return records, nil
}

// ReplaceDataset swaps the stored snapshot for a new one in a single
// transaction. The caller is responsible for integrity validation; a rejected
// dataset never reaches this method.
func (r *saleRepository) ReplaceDataset(ctx context.Context, records []domain.SaleRecord) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM sales"); err != nil {
			return fmt.Errorf("failed to clear sales table: %w", err)
		}

		// An empty snapshot is valid: the replace clears the table and
		// there is nothing to insert.
		if len(records) == 0 {
			return nil
		}

		query, args, err := insertSalesStatement(records)
		if err != nil {
			return fmt.Errorf("failed to build query: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			if pqErr, ok := err.(*pq.Error); ok {
				return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
			}
			return fmt.Errorf("failed to insert dataset: %w", err)
		}

		return nil
	})
}

// insertSalesStatement builds the bulk insert for a snapshot. squirrel
// refuses to render an INSERT with zero value sets, so callers must not pass
// an empty slice.
func insertSalesStatement(records []domain.SaleRecord) (string, []interface{}, error) {
	builder := squirrel.StatementBuilder.
		Insert(salesTable).
		Columns("order_id", "product_category", "quantity", "unit_price", "purchase_date", "feedback_text").
		PlaceholderFormat(squirrel.Dollar)

	for _, record := range records {
		builder = builder.Values(
			record.OrderID,
			record.ProductCategory,
			record.Quantity,
			record.UnitPrice,
			record.PurchaseDate.Format(time.DateOnly),
			record.FeedbackText,
		)
	}

	return builder.ToSql()
}

// Aggregate pushes a declarative aggregation request down to the database.
// Ordering is part of the contract: measure descending, category ascending on
// ties, so results are deterministic for a fixed snapshot.
func (r *saleRepository) Aggregate(req domain.AggregateRequest) ([]domain.AggregateRow, error) {
	expression, ok := measureExpressions[req.Measure]
	if !ok {
		return nil, fmt.Errorf("unsupported measure: %s", req.Measure)
	}

	query, args, err := squirrel.
		Select("product_category", expression+" AS value").
		From(salesTable).
		GroupBy("product_category").
		OrderBy("value DESC", "product_category ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to execute query: %w", err)
	}
	defer rows.Close()

	result := make([]domain.AggregateRow, 0)
	for rows.Next() {
		var row domain.AggregateRow
		if err := rows.Scan(&row.Category, &row.Value); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate row: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failure during row iteration: %w", err)
	}

	return result, nil
}

func (r *saleRepository) TotalRevenue() (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(SUM(quantity * unit_price), 0)").
		From(salesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("failed to scan total revenue: %w", err)
	}

	return total, nil
}

func scanSale(rows *sql.Rows) (domain.SaleRecord, error) {
	var record domain.SaleRecord
	var feedback sql.NullString

	err := rows.Scan(
		&record.OrderID,
		&record.ProductCategory,
		&record.Quantity,
		&record.UnitPrice,
		&record.PurchaseDate,
		&feedback,
	)
	if err != nil {
		return domain.SaleRecord{}, err
	}

	if feedback.Valid {
		record.FeedbackText = feedback.String
	}

	return record, nil
}
