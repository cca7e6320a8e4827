package repository

import (
	"github.com/asliq/akilli-garson/entity"
	"gorm.io/gorm"
)

// PreferenceRepository persists the single application-preference row.
type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{DB: db}
}

// Load returns the preference row, creating the default one on first run.
func (r *PreferenceRepository) Load() (*entity.Preference, error) {
	var p entity.Preference
	err := r.DB.First(&p).Error
	if err == gorm.ErrRecordNotFound {
		p = entity.Preference{
			Theme:              "light",
			Language:           "tr",
			SoundEnabled:       true,
			NotificationSound:  "default",
			KitchenAutoRefresh: true,
			KitchenRefreshMS:   10000,
		}
		if err := r.DB.Create(&p).Error; err != nil {
			return nil, err
		}
		return &p, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PreferenceRepository) Save(p *entity.Preference) error {
	return r.DB.Save(p).Error
}
