package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/repository"
)

// fakeSettingsRepo is an in-memory SettingsRepositoryInterface.
type fakeSettingsRepo struct {
	docs     map[string]model.Settings
	getCalls int
	err      error
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{docs: make(map[string]model.Settings)}
}

func (f *fakeSettingsRepo) GetByVariant(_ context.Context, variant string) (*model.Settings, error) {
	f.getCalls++
	if f.err != nil {
		return nil, f.err
	}
	s, ok := f.docs[variant]
	if !ok {
		return nil, repository.ErrSettingsNotFound
	}
	return &s, nil
}

func (f *fakeSettingsRepo) Upsert(_ context.Context, settings model.Settings, _ string) error {
	if f.err != nil {
		return f.err
	}
	f.docs[settings.Variant] = settings
	return nil
}

func TestSettingsServiceServesDefaultsWithoutRepository(t *testing.T) {
	svc := NewSettingsService(nil)

	got := svc.Get(context.Background(), model.VariantPymexpress)
	assert.Equal(t, model.DefaultSettings(model.VariantPymexpress), got)

	err := svc.Update(context.Background(), got, "admin")
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestSettingsServiceServesStoredSettings(t *testing.T) {
	repo := newFakeSettingsRepo()
	stored := model.DefaultSettings(model.VariantPymexpress)
	stored.FallbackRate = decimal.NewFromInt(3200)
	repo.docs[model.VariantPymexpress] = stored

	svc := NewSettingsService(repo)
	got := svc.Get(context.Background(), model.VariantPymexpress)

	assert.True(t, decimal.NewFromInt(3200).Equal(got.FallbackRate))
}

func TestSettingsServiceSnapshotCache(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	svc.Get(context.Background(), model.VariantPymexpress)
	svc.Get(context.Background(), model.VariantPymexpress)
	assert.Equal(t, 1, repo.getCalls, "second read must come from the snapshot")

	svc.ttl = time.Duration(0)
	svc.Get(context.Background(), model.VariantPymexpress)
	assert.Equal(t, 2, repo.getCalls, "expired snapshot triggers a reload")
}

func TestSettingsServiceUpdateInvalidatesSnapshot(t *testing.T) {
	repo := newFakeSettingsRepo()
	svc := NewSettingsService(repo)

	before := svc.Get(context.Background(), model.VariantPymexpress)
	require.True(t, before.Enabled)

	updated := before
	updated.Enabled = false
	require.NoError(t, svc.Update(context.Background(), updated, "admin"))

	after := svc.Get(context.Background(), model.VariantPymexpress)
	assert.False(t, after.Enabled)
}

func TestSettingsServiceFallsBackOnRepositoryError(t *testing.T) {
	repo := newFakeSettingsRepo()
	repo.err = errors.New("no reachable servers")

	svc := NewSettingsService(repo)
	got := svc.Get(context.Background(), model.VariantCCRSimple)

	assert.Equal(t, model.DefaultSettings(model.VariantCCRSimple), got)
}
