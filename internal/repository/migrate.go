package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates every table the repositories use.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&hotelModel{},
		&roomModel{},
		&attractionModel{},
		&cartModel{},
		&bookingModel{},
		&commentModel{},
		&favoriteModel{},
	)
}
