package kv

import (
	"context"

	"github.com/fastygo/planner/domain"
	"github.com/fastygo/planner/repository"
)

type settingsRepository struct {
	blob blob[domain.Settings]
}

// NewSettingsRepository returns a SettingsRepository persisting to store.
// Stored documents missing a preference inherit it from domain.DefaultSettings.
func NewSettingsRepository(store repository.Store, opts ...Option) repository.SettingsRepository {
	o := buildOptions(opts)
	return &settingsRepository{
		blob: blob[domain.Settings]{
			store:      store,
			key:        repository.KeySettings,
			collection: "settings",
			logger:     o.logger,
			fallback:   domain.DefaultSettings,
			seed:       domain.DefaultSettings,
		},
	}
}

func (r *settingsRepository) Get(ctx context.Context) domain.Settings {
	return r.blob.load(ctx)
}

func (r *settingsRepository) Save(ctx context.Context, settings domain.Settings) bool {
	return r.blob.save(ctx, settings)
}

func (r *settingsRepository) Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, bool) {
	updated := patch.Apply(r.Get(ctx))
	return updated, r.Save(ctx, updated)
}

func (r *settingsRepository) Clear(ctx context.Context) bool {
	return r.blob.clear(ctx)
}
