package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ticoship/rate-service/internal/domain/model"
)

// ErrSettingsNotFound is returned when no settings document exists for a variant.
var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepositoryInterface defines the settings persistence operations.
type SettingsRepositoryInterface interface {
	GetByVariant(ctx context.Context, variant string) (*model.Settings, error)
	Upsert(ctx context.Context, settings model.Settings, updatedBy string) error
}

// SettingsRepository stores per-variant method settings in MongoDB.
type SettingsRepository struct {
	collection *mongo.Collection
}

// NewSettingsRepository creates a settings repository over the given collection.
func NewSettingsRepository(collection *mongo.Collection) *SettingsRepository {
	return &SettingsRepository{collection: collection}
}

// settingsDocument wraps the settings with storage metadata.
type settingsDocument struct {
	model.Settings `bson:",inline"`
	UpdatedBy      string    `bson:"updated_by,omitempty"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

// GetByVariant returns the stored settings for a variant.
func (r *SettingsRepository) GetByVariant(ctx context.Context, variant string) (*model.Settings, error) {
	var doc settingsDocument
	err := r.collection.FindOne(ctx, bson.M{"variant": variant}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc.Settings, nil
}

// Upsert stores the settings for their variant, replacing any previous document.
func (r *SettingsRepository) Upsert(ctx context.Context, settings model.Settings, updatedBy string) error {
	doc := settingsDocument{
		Settings:  settings,
		UpdatedBy: updatedBy,
		UpdatedAt: time.Now(),
	}
	_, err := r.collection.ReplaceOne(
		ctx,
		bson.M{"variant": settings.Variant},
		doc,
		options.Replace().SetUpsert(true),
	)
	return err
}
