package database

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/jnmnltrnz/workforce-management-api/internal/config"
	"github.com/jnmnltrnz/workforce-management-api/internal/constants"
	"github.com/jnmnltrnz/workforce-management-api/internal/logger"
	"github.com/jnmnltrnz/workforce-management-api/internal/models"
)

var DB *gorm.DB

func Connect(cfg *config.Config) error {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
			cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName)
		dialector = postgres.Open(dsn)
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialector = mysql.Open(dsn)
	default:
		return fmt.Errorf("unsupported database driver: %s", cfg.DBDriver)
	}

	var err error
	DB, err = gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	logger.Log.Info("database connection established",
		zap.String("driver", cfg.DBDriver),
		zap.String("host", cfg.DBHost),
		zap.String("database", cfg.DBName),
	)
	return nil
}

func Migrate() error {
	logger.Log.Info("running database migrations")
	err := DB.AutoMigrate(
		&models.Account{},
		&models.Employee{},
		&models.ProfileImage{},
		&models.Document{},
		&models.Project{},
		&models.Task{},
		&models.TaskFile{},
		&models.TaskPost{},
		&models.TaskComment{},
		&models.Meeting{},
		&models.AuditTrail{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Log.Info("database migrations completed")
	return nil
}

// SeedAdmin creates the built-in admin account and its employee row on first
// boot. The admin employee is hidden from employee listings.
func SeedAdmin() error {
	var count int64
	if err := DB.Model(&models.Account{}).Where("username = ?", constants.AdminUsername).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check admin account: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(constants.AdminUsername), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	return DB.Transaction(func(tx *gorm.DB) error {
		account := &models.Account{
			Username:        constants.AdminUsername,
			PasswordHash:    string(hash),
			DefaultPassword: true,
		}
		if err := tx.Create(account).Error; err != nil {
			return err
		}
		employee := &models.Employee{
			FirstName: constants.AdminUsername,
			LastName:  constants.AdminUsername,
			Email:     "admin@localhost",
			AccountID: &account.ID,
		}
		if err := tx.Create(employee).Error; err != nil {
			return err
		}
		logger.Log.Info("seeded admin account")
		return nil
	})
}

func GetDB() *gorm.DB {
	return DB
}

// SetDB sets the database instance (used for testing)
func SetDB(db *gorm.DB) {
	DB = db
}
