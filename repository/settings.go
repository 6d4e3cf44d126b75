package repository

import (
	"context"

	"github.com/fastygo/planner/domain"
)

type SettingsRepository interface {
	Get(ctx context.Context) domain.Settings
	Save(ctx context.Context, settings domain.Settings) bool
	Update(ctx context.Context, patch domain.SettingsPatch) (domain.Settings, bool)
	Clear(ctx context.Context) bool
}
