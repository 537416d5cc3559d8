package database

import (
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"prospecta/cmd/internal/domain/entity"
)

// Init opens the database and runs migrations. A DATABASE_DSN selects
// postgres (production); without one we fall back to a local sqlite
// file, which is all the dev loop needs.
func Init() (*gorm.DB, error) {
	var (
		db  *gorm.DB
		err error
	)

	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		dbPath := filepath.Join(".", "prospecta.db")
		db, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	}
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Empresa{},
		&entity.Socio{},
		&entity.Contato{},
		&entity.Lead{},
		&entity.Negocio{},
		&entity.Proposta{},
		&entity.Atividade{},
		&entity.Lembrete{},
		&entity.Configuracao{},
	)
}
