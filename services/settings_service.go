package services

import (
	"github.com/asliq/akilli-garson/entity"
	"github.com/asliq/akilli-garson/repository"
)

// SettingsService exposes the persisted application preferences.
type SettingsService struct {
	Repo    *repository.PreferenceRepository
	changed chan struct{}
}

func NewSettingsService(repo *repository.PreferenceRepository) *SettingsService {
	return &SettingsService{Repo: repo, changed: make(chan struct{}, 1)}
}

// Changed signals after every saved update. Delivery is conflated: a burst of
// updates may produce a single signal.
func (s *SettingsService) Changed() <-chan struct{} {
	return s.changed
}

func (s *SettingsService) Get() (*entity.Preference, error) {
	return s.Repo.Load()
}

type UpdateSettingsReq struct {
	Theme              *string `json:"theme"`
	Language           *string `json:"language"`
	SoundEnabled       *bool   `json:"soundEnabled"`
	NotificationSound  *string `json:"notificationSound"`
	KitchenAutoRefresh *bool   `json:"kitchenAutoRefresh"`
	KitchenRefreshMS   *int    `json:"kitchenRefreshInterval"`
}

// Update applies only the fields the request carries; absent fields keep
// their stored value.
func (s *SettingsService) Update(req UpdateSettingsReq) (*entity.Preference, error) {
	p, err := s.Repo.Load()
	if err != nil {
		return nil, err
	}

	if req.Theme != nil {
		switch *req.Theme {
		case "light", "dark":
		default:
			return nil, &ValidationError{Field: "theme", Msg: "must be light or dark"}
		}
		p.Theme = *req.Theme
	}
	if req.Language != nil {
		switch *req.Language {
		case "tr", "en":
		default:
			return nil, &ValidationError{Field: "language", Msg: "must be tr or en"}
		}
		p.Language = *req.Language
	}
	if req.SoundEnabled != nil {
		p.SoundEnabled = *req.SoundEnabled
	}
	if req.NotificationSound != nil {
		p.NotificationSound = *req.NotificationSound
	}
	if req.KitchenAutoRefresh != nil {
		p.KitchenAutoRefresh = *req.KitchenAutoRefresh
	}
	if req.KitchenRefreshMS != nil {
		if *req.KitchenRefreshMS < 1000 {
			return nil, &ValidationError{Field: "kitchenRefreshInterval", Msg: "minimum 1000ms"}
		}
		p.KitchenRefreshMS = *req.KitchenRefreshMS
	}

	if err := s.Repo.Save(p); err != nil {
		return nil, err
	}
	select {
	case s.changed <- struct{}{}:
	default:
	}
	return p, nil
}
