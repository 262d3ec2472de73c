package repository

import (
	"context"

	"flightcast-service/internal/domain/entity"
)

// ConfigRepository defines the app-config singleton store. Get returns the
// last-saved config or the documented default; Save overwrites atomically.
type ConfigRepository interface {
	Get(ctx context.Context) (entity.AppConfig, error)
	Save(ctx context.Context, config entity.AppConfig) error
}
