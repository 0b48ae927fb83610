package main

import (
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/config"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/database"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/logging"
	"github.com/ahmetcoskunkizilkaya/clinic-backend/internal/models"
)

// Seeds an admin account, a sample doctor and a sample patient so a
// fresh deployment can be exercised immediately. Safe to re-run:
// existing rows are left untouched.
func main() {
	logging.Setup()

	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := database.Migrate(db); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	adminPassword := getEnv("SEED_ADMIN_PASSWORD", "admin123")
	doctorPassword := getEnv("SEED_DOCTOR_PASSWORD", "doctor123")

	if err := seedUser(db, "Admin", "admin@clinic.local", adminPassword, models.RoleAdmin); err != nil {
		slog.Error("admin seed failed", "error", err)
		os.Exit(1)
	}
	if err := seedUser(db, "Dr. Sarah Bennett", "s.bennett@clinic.local", doctorPassword, models.RoleDoctor); err != nil {
		slog.Error("doctor seed failed", "error", err)
		os.Exit(1)
	}
	if err := seedPatient(db); err != nil {
		slog.Error("patient seed failed", "error", err)
		os.Exit(1)
	}

	slog.Info("seed completed")
}

func seedUser(db *gorm.DB, name, email, password, role string) error {
	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		slog.Info("user already present", "email", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}
	if err := db.Create(&user).Error; err != nil {
		return err
	}

	slog.Info("user seeded", "email", email, "role", role)
	return nil
}

func seedPatient(db *gorm.DB) error {
	email := "j.moreau@example.com"

	var existing models.Patient
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		slog.Info("patient already present", "email", email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	patient := models.Patient{
		ID:                    uuid.New(),
		LastName:              "Moreau",
		FirstName:             "Julie",
		BirthDate:             time.Date(1988, 4, 12, 0, 0, 0, 0, time.UTC),
		Gender:                models.GenderFemale,
		Address:               "14 Rue des Lilas, Lyon",
		Phone:                 "+33600000001",
		Email:                 &email,
		EmergencyContactName:  "Paul Moreau",
		EmergencyContactPhone: "+33600000002",
	}
	if err := db.Create(&patient).Error; err != nil {
		return err
	}

	slog.Info("patient seeded", "email", email)
	return nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
