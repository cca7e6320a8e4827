package configs

import (
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/asliq/akilli-garson/entity"
)

// SeedStaff creates the initial manager account on first run. The default
// PIN comes from the environment so production installs never ship the
// fallback.
func SeedStaff() error {
	db := DB()

	var count int64
	db.Model(&entity.Waiter{}).Count(&count)
	if count > 0 {
		return nil
	}

	pin := getEnv("MANAGER_PIN", "")
	if pin == "" {
		log.Println("skip seeding staff: missing MANAGER_PIN")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pin), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	manager := entity.Waiter{
		Code:    getEnv("MANAGER_CODE", "1000"),
		Name:    "Yönetici",
		Role:    "manager",
		PinHash: string(hash),
	}
	return db.Create(&manager).Error
}
