package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ticoship/rate-service/internal/domain/model"
)

// AuditRepositoryInterface defines the audit persistence operations.
type AuditRepositoryInterface interface {
	InsertRequestLog(ctx context.Context, entry *model.RequestLog) error
	InsertQuoteLog(ctx context.Context, entry *model.QuoteLog) error
}

// AuditRepository stores request and quote audit entries in MongoDB.
type AuditRepository struct {
	logs   *mongo.Collection
	quotes *mongo.Collection
}

// NewAuditRepository creates an audit repository over the given collections.
func NewAuditRepository(logs, quotes *mongo.Collection) *AuditRepository {
	return &AuditRepository{logs: logs, quotes: quotes}
}

// InsertRequestLog persists one HTTP request log entry.
func (r *AuditRepository) InsertRequestLog(ctx context.Context, entry *model.RequestLog) error {
	_, err := r.logs.InsertOne(ctx, entry)
	return err
}

// InsertQuoteLog persists one quote computation record.
func (r *AuditRepository) InsertQuoteLog(ctx context.Context, entry *model.QuoteLog) error {
	_, err := r.quotes.InsertOne(ctx, entry)
	return err
}
