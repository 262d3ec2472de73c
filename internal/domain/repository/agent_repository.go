package repository

import (
	"context"

	"flightcast-service/internal/domain/entity"
)

// AgentRepository defines the agent profile store. At most one profile is
// active; deleting the active profile promotes the first remaining one.
type AgentRepository interface {
	List(ctx context.Context) ([]*entity.AgentProfile, error)
	GetActive(ctx context.Context) (*entity.AgentProfile, error)
	Create(ctx context.Context, profile *entity.AgentProfile) error
	Update(ctx context.Context, profile *entity.AgentProfile) error
	Delete(ctx context.Context, id string) error
	SetActive(ctx context.Context, id string) error
}
