package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/sales-insights-api/infrastructure/database/postgres"
	"github.com/vfg2006/sales-insights-api/internal/domain"
)

const (
	feedbackSentimentsTable = "feedback_sentiments"
)

// SentimentRepository caches one sentiment annotation per (order, model
// version). A record is reclassified only when its feedback text changes
// (dataset replace clears the cache) or the model version moves on.
type SentimentRepository interface {
	ListByModelVersion(modelVersion string) ([]domain.SentimentAnnotation, error)
	ListPendingFeedback(modelVersion string) ([]domain.SaleRecord, error)
	SaveOrUpdate(annotation domain.SentimentAnnotation) error
	DeleteAll() error
}

type sentimentRepository struct {
	conn *postgres.Connection
}

func NewSentimentRepository(conn *postgres.Connection) SentimentRepository {
	return &sentimentRepository{
		conn: conn,
	}
}

func (r *sentimentRepository) ListByModelVersion(modelVersion string) ([]domain.SentimentAnnotation, error) {
	query, args, err := squirrel.
		Select("fs.order_id, fs.label, fs.confidence, fs.model_version").
		From(feedbackSentimentsTable + " fs").
		Where(squirrel.Eq{"fs.model_version": modelVersion}).
		OrderBy("fs.order_id ASC").
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

	annotations := make([]domain.SentimentAnnotation, 0)
	for rows.Next() {
		var a domain.SentimentAnnotation
		var label string
		if err := rows.Scan(&a.OrderID, &label, &a.Confidence, &a.ModelVersion); err != nil {
			return nil, fmt.Errorf("failed to scan sentiment annotation: %w", err)
		}
		a.Label = domain.ParseSentimentLabel(label)
		annotations = append(annotations, a)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failure during row iteration: %w", err)
	}

	return annotations, nil
}

// ListPendingFeedback returns sales with feedback text that have no cached
// annotation for the given model version.
func (r *sentimentRepository) ListPendingFeedback(modelVersion string) ([]domain.SaleRecord, error) {
	query, args, err := squirrel.
		Select("s.order_id, s.product_category, s.quantity, s.unit_price, s.purchase_date, s.feedback_text").
		From(salesTable + " s").
		LeftJoin(feedbackSentimentsTable+" fs ON fs.order_id = s.order_id AND fs.model_version = ?", modelVersion).
		Where(squirrel.NotEq{"s.feedback_text": ""}).
		Where("fs.order_id IS NULL").
		OrderBy("s.order_id ASC").
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

func (r *sentimentRepository) SaveOrUpdate(annotation domain.SentimentAnnotation) error {
	query := squirrel.StatementBuilder.
		Insert(feedbackSentimentsTable).
		Columns("order_id", "label", "confidence", "model_version").
		Values(
			annotation.OrderID,
			string(annotation.Label),
			annotation.Confidence,
			annotation.ModelVersion,
		).
		Suffix(`
			ON CONFLICT (order_id, model_version) DO UPDATE SET
				label = EXCLUDED.label,
				confidence = EXCLUDED.confidence,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// DeleteAll clears the annotation cache. Called when a dataset is replaced,
// since cached labels belong to the previous snapshot's feedback texts.
func (r *sentimentRepository) DeleteAll() error {
	query, args, err := squirrel.
		Delete(feedbackSentimentsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}
