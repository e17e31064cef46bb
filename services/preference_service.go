package services

import (
	"inkstudio-backend/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PreferenceService persists per-user layout/theme preferences with explicit
// load/save calls; it replaces what was previously a global mutable store.
type PreferenceService struct {
	db *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{db: db}
}

func (s *PreferenceService) Load(userID uuid.UUID) (models.JSONB, error) {
	var user models.User
	if err := s.db.Select("preferences").First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	if user.Preferences == nil {
		return models.JSONB{}, nil
	}
	return user.Preferences, nil
}

func (s *PreferenceService) Save(userID uuid.UUID, prefs models.JSONB) error {
	return s.db.Model(&models.User{}).Where("id = ?", userID).
		Update("preferences", prefs).Error
}
