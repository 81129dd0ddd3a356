package repository

import (
	"context"
	"errors"

	"fittrack/internal/models"

	"gorm.io/gorm"
)

// PreferenceRepository defines persistence operations for per-user settings.
type PreferenceRepository interface {
	GetByUser(ctx context.Context, userID uint) (*models.UserPreferences, error)
	Create(ctx context.Context, prefs *models.UserPreferences) error
	Save(ctx context.Context, prefs *models.UserPreferences) error
}

type preferenceRepository struct {
	db *gorm.DB
}

// NewPreferenceRepository returns a new PreferenceRepository implementation.
func NewPreferenceRepository(db *gorm.DB) PreferenceRepository {
	return &preferenceRepository{db: db}
}

// GetByUser returns (nil, nil) when the user has no settings row yet; the
// service layer materializes defaults on first read.
func (r *preferenceRepository) GetByUser(ctx context.Context, userID uint) (*models.UserPreferences, error) {
	var prefs models.UserPreferences
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, classify(err, "Preferences")
	}
	return &prefs, nil
}

func (r *preferenceRepository) Create(ctx context.Context, prefs *models.UserPreferences) error {
	if err := r.db.WithContext(ctx).Create(prefs).Error; err != nil {
		return classify(err, "Preferences")
	}
	return nil
}

func (r *preferenceRepository) Save(ctx context.Context, prefs *models.UserPreferences) error {
	if err := r.db.WithContext(ctx).Save(prefs).Error; err != nil {
		return classify(err, "Preferences")
	}
	return nil
}
