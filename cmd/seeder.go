package cmd

import (
	"fmt"
	"log"

	"github.com/hrcore/hr-management/internal"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormPostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with sample data",
	Long:  `Seed the database with scopes, an admin user and sample org data for development.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		sqlDB, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}

		db, err := gorm.Open(gormPostgres.New(gormPostgres.Config{Conn: sqlDB.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to init gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{
				"user_scopes", "scopes", "head_of_units",
				"department_users", "unit_users", "location_users", "designation_users",
				"users", "units", "departments", "designations", "locations",
			} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear table %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing data")
		}

		for _, name := range internal.AllScopes {
			var id int64
			if err := db.Raw("SELECT id FROM scopes WHERE name = ?", name).Row().Scan(&id); err != nil {
				if err := db.Exec("INSERT INTO scopes (name, created_at) VALUES (?, CURRENT_TIMESTAMP)", name).Error; err != nil {
					log.Fatalf("failed to insert scope %s: %v", name, err)
				}
			}
		}
		fmt.Println("Seeded scopes")

		adminID, err := seedAdmin(db)
		if err != nil {
			log.Fatalf("failed to seed admin user: %v", err)
		}

		for _, name := range internal.AllScopes {
			var scopeID int64
			if err := db.Raw("SELECT id FROM scopes WHERE name = ?", name).Row().Scan(&scopeID); err != nil {
				log.Fatalf("scope not found after insert %s: %v", name, err)
			}

			var granted int
			if err := db.Raw("SELECT 1 FROM user_scopes WHERE user_id = ? AND scope_id = ?", adminID, scopeID).Row().Scan(&granted); err == nil {
				continue
			}

			if err := db.Exec("INSERT INTO user_scopes (user_id, scope_id, created_at) VALUES (?, ?, CURRENT_TIMESTAMP)", adminID, scopeID).Error; err != nil {
				log.Fatalf("failed to grant scope %s: %v", name, err)
			}
		}
		fmt.Println("Granted all scopes to admin user:", seedAdminEmail)

		if err := seedOrgData(db); err != nil {
			log.Fatalf("failed to seed org data: %v", err)
		}
	},
}

const seedAdminEmail = "admin@hrcore.local"

func seedAdmin(db *gorm.DB) (int64, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return 0, fmt.Errorf("hash admin password: %w", err)
	}

	var exists int
	if err := db.Raw("SELECT 1 FROM users WHERE email = ?", seedAdminEmail).Row().Scan(&exists); err != nil {
		if err := db.Exec(
			"INSERT INTO users (name, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
			"Admin", seedAdminEmail, string(hash)).Error; err != nil {
			return 0, fmt.Errorf("insert admin user: %w", err)
		}
		fmt.Println("Seeded admin user:", seedAdminEmail)
	}

	var adminID int64
	if err := db.Raw("SELECT id FROM users WHERE email = ?", seedAdminEmail).Row().Scan(&adminID); err != nil {
		return 0, fmt.Errorf("lookup admin user id: %w", err)
	}
	return adminID, nil
}

func seedOrgData(db *gorm.DB) error {
	var count int64
	if err := db.Raw("SELECT COUNT(*) FROM departments").Row().Scan(&count); err == nil && count > 0 {
		fmt.Println("Org data already present, skipping")
		return nil
	}

	if err := db.Exec(
		"INSERT INTO departments (name, description, status, created_at, updated_at) VALUES (?, ?, 'active', CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		"Engineering", "Product engineering department").Error; err != nil {
		return fmt.Errorf("seed department: %w", err)
	}

	var deptID int64
	if err := db.Raw("SELECT id FROM departments WHERE name = ?", "Engineering").Row().Scan(&deptID); err != nil {
		return fmt.Errorf("lookup seeded department: %w", err)
	}

	if err := db.Exec(
		"INSERT INTO units (name, description, department_id, created_at, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		"Platform", "Platform engineering unit", deptID).Error; err != nil {
		return fmt.Errorf("seed unit: %w", err)
	}

	if err := db.Exec(
		"INSERT INTO designations (role, description, status, level, created_at, updated_at) VALUES (?, ?, 'active', 1, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		"Engineer", "Software engineer").Error; err != nil {
		return fmt.Errorf("seed designation: %w", err)
	}

	if err := db.Exec(
		"INSERT INTO locations (location, zone, state, created_at, updated_at) VALUES (?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)",
		"HQ", "Central", "Default").Error; err != nil {
		return fmt.Errorf("seed location: %w", err)
	}

	fmt.Println("Seeded sample org data")
	return nil
}
