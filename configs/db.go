package configs

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Isaacjdv/futbolapp-backend/entity"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

// ConnectionDB opens the database named by the config. TranslateError is on
// so unique-constraint violations surface as gorm.ErrDuplicatedKey instead
// of raw driver errors.
func ConnectionDB(cfg *Config) {
	gormCfg := &gorm.Config{TranslateError: true}

	var (
		database *gorm.DB
		err      error
	)
	switch cfg.DBDriver {
	case "postgres":
		database, err = gorm.Open(postgres.Open(cfg.DBSource), gormCfg)
	default:
		database, err = gorm.Open(sqlite.Open(cfg.DBSource), gormCfg)
	}
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	db = database
}

func SetupDatabase() {
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Team{},
		&entity.Product{},
		&entity.CartItem{},
		&entity.SavedItem{},
		&entity.Preference{},
		&entity.SavedDish{},
	); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}
}
