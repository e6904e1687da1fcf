package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"berkconnect-backend/internal/config"
	"berkconnect-backend/internal/database"
	"berkconnect-backend/internal/database/models"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ClubData struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Category    string `yaml:"category"`
	MeetingTime string `yaml:"meeting_time,omitempty"`
	Location    string `yaml:"location,omitempty"`
	ImageURL    string `yaml:"image_url,omitempty"`
}

type CoordinatorData struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Email string `yaml:"email"`
}

// File structures
type ClubsFile struct {
	Clubs []ClubData `yaml:"clubs"`
}

type CoordinatorsFile struct {
	Coordinators []CoordinatorData `yaml:"coordinators"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	clubs, err := loadClubs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load clubs: %w", err)
	}

	coordinators, err := loadCoordinators(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load coordinators: %w", err)
	}

	// Create clubs. Every seeded club starts unclaimed.
	clubCreated := 0
	for _, clubData := range clubs {
		created, err := createClub(db, clubData)
		if err != nil {
			return fmt.Errorf("failed to create club %s: %w", clubData.Name, err)
		}
		if created {
			clubCreated++
		}
	}
	log.Printf("📋 Clubs: %d created, %d total", clubCreated, len(clubs))

	// Create coordinator accounts and grant the school-wide role
	coordCreated := 0
	for _, coordData := range coordinators {
		created, err := createCoordinator(db, coordData)
		if err != nil {
			return fmt.Errorf("failed to create coordinator %s: %w", coordData.ID, err)
		}
		if created {
			coordCreated++
		}
	}
	log.Printf("📋 Coordinators: %d created, %d total", coordCreated, len(coordinators))

	return nil
}

func loadClubs(dataDir string) ([]ClubData, error) {
	data, err := os.ReadFile(dataDir + "/clubs.yaml")
	if err != nil {
		return nil, err
	}

	var file ClubsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Clubs, nil
}

func loadCoordinators(dataDir string) ([]CoordinatorData, error) {
	data, err := os.ReadFile(dataDir + "/coordinators.yaml")
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var file CoordinatorsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	return file.Coordinators, nil
}

// createClub inserts the club if no club with the same name exists yet.
// Reruns of the loader never duplicate or overwrite catalog entries.
func createClub(db *gorm.DB, data ClubData) (bool, error) {
	var existing models.Club
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	club := models.Club{
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		MeetingTime: data.MeetingTime,
		Location:    data.Location,
		ImageURL:    data.ImageURL,
		IsClaimed:   false,
	}
	if err := db.Create(&club).Error; err != nil {
		return false, err
	}
	return true, nil
}

// createCoordinator upserts the account row and grants the coordinator role
func createCoordinator(db *gorm.DB, data CoordinatorData) (bool, error) {
	var existing models.User
	err := db.Where("id = ?", data.ID).First(&existing).Error
	created := false
	if err == gorm.ErrRecordNotFound {
		user := models.User{
			ID:       data.ID,
			Name:     data.Name,
			Email:    data.Email,
			UserType: "staff",
		}
		if err := db.Create(&user).Error; err != nil {
			return false, err
		}
		created = true
	} else if err != nil {
		return false, err
	}

	var role models.UserRole
	err = db.Where("user_id = ? AND role = ?", data.ID, models.SchoolRoleCoordinator).First(&role).Error
	if err == gorm.ErrRecordNotFound {
		role = models.UserRole{UserID: data.ID, Role: models.SchoolRoleCoordinator}
		if err := db.Create(&role).Error; err != nil {
			return false, err
		}
	} else if err != nil {
		return false, err
	}

	return created, nil
}
