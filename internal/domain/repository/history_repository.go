package repository

import (
	"context"

	"flightcast-service/internal/domain/entity"
)

// HistoryRepository defines the bounded history store. Append prepends the
// item and trims the store to entity.MaxHistoryItems, evicting the oldest.
type HistoryRepository interface {
	Append(ctx context.Context, item *entity.HistoryItem) error
	List(ctx context.Context) ([]*entity.HistoryItem, error)
	Clear(ctx context.Context) error
}
