// Package memory provides in-memory store implementations. They back the
// unit tests and local runs without Mongo/Postgres.
package memory

import (
	"context"
	"sync"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/domain/repository"
	"flightcast-service/pkg/apperrors"
)

// HistoryRepository is an in-memory HistoryRepository
type HistoryRepository struct {
	mu    sync.Mutex
	items []*entity.HistoryItem
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{}
}

// Append prepends the item and trims to capacity
func (r *HistoryRepository) Append(ctx context.Context, item *entity.HistoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *item
	r.items = append([]*entity.HistoryItem{&copied}, r.items...)
	if len(r.items) > entity.MaxHistoryItems {
		r.items = r.items[:entity.MaxHistoryItems]
	}
	return nil
}

// List returns the stored items, most recent first
func (r *HistoryRepository) List(ctx context.Context) ([]*entity.HistoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.HistoryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

// Clear removes all stored items
func (r *HistoryRepository) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
	return nil
}

// ConfigRepository is an in-memory ConfigRepository
type ConfigRepository struct {
	mu     sync.Mutex
	config *entity.AppConfig
}

func NewConfigRepository() *ConfigRepository {
	return &ConfigRepository{}
}

// Get returns the last-saved config or the documented default
func (r *ConfigRepository) Get(ctx context.Context) (entity.AppConfig, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.config == nil {
		return entity.DefaultAppConfig(), nil
	}
	return *r.config, nil
}

// Save overwrites the whole config value
func (r *ConfigRepository) Save(ctx context.Context, config entity.AppConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.config = &config
	return nil
}

// AgentRepository is an in-memory AgentRepository
type AgentRepository struct {
	mu       sync.Mutex
	profiles []*entity.AgentProfile
}

func NewAgentRepository() *AgentRepository {
	return &AgentRepository{}
}

// List returns all profiles in creation order, or the built-in default when
// the store is empty.
func (r *AgentRepository) List(ctx context.Context) ([]*entity.AgentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if len(r.profiles) == 0 {
		fallback := entity.DefaultAgent()
		return []*entity.AgentProfile{&fallback}, nil
	}
	out := make([]*entity.AgentProfile, len(r.profiles))
	for i, p := range r.profiles {
		copied := *p
		out[i] = &copied
	}
	return out, nil
}

// GetActive returns the active profile, falling back to the first profile
func (r *AgentRepository) GetActive(ctx context.Context) (*entity.AgentProfile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.IsActive {
			copied := *p
			return &copied, nil
		}
	}
	if len(r.profiles) > 0 {
		copied := *r.profiles[0]
		return &copied, nil
	}
	fallback := entity.DefaultAgent()
	return &fallback, nil
}

// Create stores a new profile
func (r *AgentRepository) Create(ctx context.Context, profile *entity.AgentProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if profile.IsActive {
		for _, p := range r.profiles {
			p.IsActive = false
		}
	}
	copied := *profile
	r.profiles = append(r.profiles, &copied)
	return nil
}

// Update overwrites an existing profile's identity fields
func (r *AgentRepository) Update(ctx context.Context, profile *entity.AgentProfile) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.profiles {
		if p.ID == profile.ID {
			p.Name = profile.Name
			p.Role = profile.Role
			p.Phone = profile.Phone
			p.Email = profile.Email
			return nil
		}
	}
	return apperrors.NotFound("agent profile", profile.ID)
}

// Delete removes a profile, promoting the first remaining profile when the
// active one is deleted.
func (r *AgentRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range r.profiles {
		if p.ID != id {
			continue
		}
		wasActive := p.IsActive
		r.profiles = append(r.profiles[:i], r.profiles[i+1:]...)
		if wasActive && len(r.profiles) > 0 {
			r.profiles[0].IsActive = true
		}
		return nil
	}
	return apperrors.NotFound("agent profile", id)
}

// SetActive flips the active flag to the given profile
func (r *AgentRepository) SetActive(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	found := false
	for _, p := range r.profiles {
		if p.ID == id {
			found = true
			break
		}
	}
	if !found {
		return apperrors.NotFound("agent profile", id)
	}
	for _, p := range r.profiles {
		p.IsActive = p.ID == id
	}
	return nil
}

var (
	_ = repository.HistoryRepository(&HistoryRepository{})
	_ = repository.ConfigRepository(&ConfigRepository{})
	_ = repository.AgentRepository(&AgentRepository{})
)
