// Package service holds the application services between the HTTP layer
// and the repositories.
package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/ticoship/rate-service/internal/domain/model"
	"github.com/ticoship/rate-service/internal/repository"
)

// ErrRepositoryNotConfigured is returned when persistence is disabled.
var ErrRepositoryNotConfigured = errors.New("repository not configured")

// defaultSnapshotTTL bounds how stale a cached settings snapshot may be.
const defaultSnapshotTTL = 30 * time.Second

// SettingsService provides per-variant method settings. Reads always
// succeed: when no repository is configured or the stored document is
// missing, the variant's defaults are returned.
type SettingsService interface {
	Get(ctx context.Context, variant string) model.Settings
	Update(ctx context.Context, settings model.Settings, updatedBy string) error
}

type settingsSnapshot struct {
	settings  model.Settings
	expiresAt time.Time
}

// SettingsServiceImpl implements SettingsService with a short-lived
// per-variant snapshot cache in front of MongoDB.
type SettingsServiceImpl struct {
	repo     repository.SettingsRepositoryInterface
	defaults func(variant string) model.Settings

	mu        sync.RWMutex
	snapshots map[string]settingsSnapshot
	ttl       time.Duration
}

// SettingsOption configures a SettingsServiceImpl.
type SettingsOption func(*SettingsServiceImpl)

// WithDefaults replaces the factory defaults served when no document is
// stored, letting deploy-time configuration preconfigure the variants.
func WithDefaults(defaults func(variant string) model.Settings) SettingsOption {
	return func(s *SettingsServiceImpl) {
		if defaults != nil {
			s.defaults = defaults
		}
	}
}

// NewSettingsService creates a settings service. A nil repository is
// valid and serves defaults only.
func NewSettingsService(repo repository.SettingsRepositoryInterface, opts ...SettingsOption) *SettingsServiceImpl {
	s := &SettingsServiceImpl{
		repo:      repo,
		defaults:  model.DefaultSettings,
		snapshots: make(map[string]settingsSnapshot),
		ttl:       defaultSnapshotTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the settings snapshot for a variant.
func (s *SettingsServiceImpl) Get(ctx context.Context, variant string) model.Settings {
	s.mu.RLock()
	snap, ok := s.snapshots[variant]
	s.mu.RUnlock()
	if ok && time.Now().Before(snap.expiresAt) {
		return snap.settings
	}

	settings := s.load(ctx, variant)

	s.mu.Lock()
	s.snapshots[variant] = settingsSnapshot{
		settings:  settings,
		expiresAt: time.Now().Add(s.ttl),
	}
	s.mu.Unlock()

	return settings
}

func (s *SettingsServiceImpl) load(ctx context.Context, variant string) model.Settings {
	if s.repo == nil {
		return s.defaults(variant)
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	stored, err := s.repo.GetByVariant(ctx, variant)
	switch {
	case errors.Is(err, repository.ErrSettingsNotFound):
		return s.defaults(variant)
	case err != nil:
		log.Warn().Err(err).
			Str("variant", variant).
			Msg("Settings lookup failed, serving defaults")
		return s.defaults(variant)
	}
	return *stored
}

// Update persists the settings and invalidates the variant's snapshot.
func (s *SettingsServiceImpl) Update(ctx context.Context, settings model.Settings, updatedBy string) error {
	if s.repo == nil {
		return ErrRepositoryNotConfigured
	}
	if err := s.repo.Upsert(ctx, settings, updatedBy); err != nil {
		return err
	}

	s.mu.Lock()
	delete(s.snapshots, settings.Variant)
	s.mu.Unlock()
	return nil
}
