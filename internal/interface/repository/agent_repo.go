package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"flightcast-service/internal/domain/entity"
	"flightcast-service/internal/domain/repository"
	"flightcast-service/pkg/apperrors"
)

// GormAgentRepository implements the AgentRepository interface
type GormAgentRepository struct {
	db *gorm.DB
}

// NewGormAgentRepository creates a new GORM agent repository
func NewGormAgentRepository(db *gorm.DB) repository.AgentRepository {
	return &GormAgentRepository{db: db}
}

// Agents GORM model for database mapping
type Agents struct {
	ID        string `gorm:"primaryKey"`
	Name      string `gorm:"column:name"`
	Role      string `gorm:"column:role"`
	Phone     string `gorm:"column:phone"`
	Email     string `gorm:"column:email"`
	IsActive  bool   `gorm:"column:is_active"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName overrides the default table name
func (Agents) TableName() string {
	return "m_agents"
}

func toEntity(row *Agents) *entity.AgentProfile {
	return &entity.AgentProfile{
		ID:       row.ID,
		Name:     row.Name,
		Role:     row.Role,
		Phone:    row.Phone,
		Email:    row.Email,
		IsActive: row.IsActive,
	}
}

// List returns all profiles in creation order. An empty store yields the
// built-in default profile.
func (r *GormAgentRepository) List(ctx context.Context) ([]*entity.AgentProfile, error) {
	var rows []Agents
	result := r.db.WithContext(ctx).Order("created_at").Find(&rows)
	if result.Error != nil {
		return nil, result.Error
	}
	if len(rows) == 0 {
		fallback := entity.DefaultAgent()
		return []*entity.AgentProfile{&fallback}, nil
	}

	profiles := make([]*entity.AgentProfile, len(rows))
	for i := range rows {
		profiles[i] = toEntity(&rows[i])
	}
	return profiles, nil
}

// GetActive returns the active profile, or the first profile if none is
// flagged active.
func (r *GormAgentRepository) GetActive(ctx context.Context) (*entity.AgentProfile, error) {
	var row Agents
	result := r.db.WithContext(ctx).Where("is_active = ?", true).First(&row)
	if result.Error == nil {
		return toEntity(&row), nil
	}
	if !errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, result.Error
	}

	result = r.db.WithContext(ctx).Order("created_at").First(&row)
	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		fallback := entity.DefaultAgent()
		return &fallback, nil
	}
	if result.Error != nil {
		return nil, result.Error
	}
	return toEntity(&row), nil
}

// Create stores a new profile. A profile created as active deactivates the
// others.
func (r *GormAgentRepository) Create(ctx context.Context, profile *entity.AgentProfile) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if profile.IsActive {
			if err := tx.Model(&Agents{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
				return err
			}
		}
		row := Agents{
			ID:       profile.ID,
			Name:     profile.Name,
			Role:     profile.Role,
			Phone:    profile.Phone,
			Email:    profile.Email,
			IsActive: profile.IsActive,
		}
		return tx.Create(&row).Error
	})
}

// Update overwrites an existing profile's identity fields
func (r *GormAgentRepository) Update(ctx context.Context, profile *entity.AgentProfile) error {
	result := r.db.WithContext(ctx).Model(&Agents{}).Where("id = ?", profile.ID).Updates(map[string]interface{}{
		"name":  profile.Name,
		"role":  profile.Role,
		"phone": profile.Phone,
		"email": profile.Email,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.NotFound("agent profile", profile.ID)
	}
	return nil
}

// Delete removes a profile. If the deleted profile was active, the first
// remaining profile becomes active.
func (r *GormAgentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row Agents
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("agent profile", id)
			}
			return err
		}
		if err := tx.Delete(&Agents{}, "id = ?", id).Error; err != nil {
			return err
		}
		if !row.IsActive {
			return nil
		}

		var next Agents
		err := tx.Order("created_at").First(&next).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		return tx.Model(&Agents{}).Where("id = ?", next.ID).Update("is_active", true).Error
	})
}

// SetActive flips the active flag to the given profile
func (r *GormAgentRepository) SetActive(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row Agents
		if err := tx.Where("id = ?", id).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("agent profile", id)
			}
			return err
		}
		if err := tx.Model(&Agents{}).Where("is_active = ?", true).Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&Agents{}).Where("id = ?", id).Update("is_active", true).Error
	})
}
