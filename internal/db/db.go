package db

import (
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/config"
	"github.com/DataSyncDynamics/peachy-pooches-sub000/internal/models"
)

func NewDB(cfg *config.Config) *gorm.DB {
	db, err := gorm.Open(postgres.Open(cfg.DBUrl), &gorm.Config{
		PrepareStmt: true,
	})
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("failed to get sql.DB: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(10 * time.Minute)

	if err := db.AutoMigrate(
		&models.Salon{},
		&models.User{},
		&models.GroomService{},
		&models.Client{},
		&models.Pet{},
		&models.BusinessHours{},
		&models.BlockedTime{},
		&models.Appointment{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}

	db.Exec(`
        UPDATE salons
        SET timezone = 'America/Sao_Paulo'
        WHERE timezone IS NULL OR timezone = ''
    `)

	// Autoridade final contra double-booking: a checagem transacional do
	// repositório cobre o caminho normal, mas só a constraint de exclusão
	// garante atomicidade entre conexões concorrentes.
	db.Exec(`CREATE EXTENSION IF NOT EXISTS btree_gist`)
	db.Exec(`
        DO $$
        BEGIN
            IF NOT EXISTS (
                SELECT 1 FROM pg_constraint
                WHERE conname = 'appointments_no_double_booking'
            ) THEN
                ALTER TABLE appointments
                ADD CONSTRAINT appointments_no_double_booking
                EXCLUDE USING gist (
                    groomer_id WITH =,
                    tsrange(start_time, end_time) WITH &&
                )
                WHERE (status <> 'cancelled');
            END IF;
        END
        $$;
    `)

	return db
}
