package repository

import (
	"github.com/asliq/akilli-garson/entity"
	"gorm.io/gorm"
)

// WaiterRepository reads staff accounts from the local store.
type WaiterRepository struct {
	DB *gorm.DB
}

func NewWaiterRepository(db *gorm.DB) *WaiterRepository {
	return &WaiterRepository{DB: db}
}

func (r *WaiterRepository) FindByCode(code string) (*entity.Waiter, error) {
	var w entity.Waiter
	if err := r.DB.Where("code = ?", code).First(&w).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WaiterRepository) FindByID(id uint) (*entity.Waiter, error) {
	var w entity.Waiter
	if err := r.DB.First(&w, id).Error; err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WaiterRepository) List() ([]entity.Waiter, error) {
	var out []entity.Waiter
	err := r.DB.Order("code").Find(&out).Error
	return out, err
}
