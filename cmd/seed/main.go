package main

import (
	"log"
	"os"

	"interview-platform-be/internal/model"
	"interview-platform-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Info: No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		log.Fatal("Error: DB_CONNECTION_STRING is not set")
	}

	db, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		log.Fatal("Error: Failed to connect to database:", err)
	}

	color.Cyan("🚀 Seeding interview platform data\n")

	seedAdminUser(db)
	seedLevels(db)

	color.Green("✅ Seeding complete")
}

func seedAdminUser(db *gorm.DB) {
	color.Yellow("\n[1] Admin user")

	email := os.Getenv("SEED_ADMIN_EMAIL")
	password := os.Getenv("SEED_ADMIN_PASSWORD")
	if email == "" || password == "" {
		color.Red("SEED_ADMIN_EMAIL / SEED_ADMIN_PASSWORD not set, skipping")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		color.Red("Failed to hash password: %v", err)
		return
	}

	admin := model.User{
		Id:           uuid.New(),
		Email:        email,
		FullName:     "Administrator",
		PasswordHash: string(hash),
		Roles:        datatypes.JSONMap{"admin": true, "eboard": true, "member": true},
		Status:       "active",
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoNothing: true,
	}).Create(&admin)
	if result.Error != nil {
		color.Red("Failed: %v", result.Error)
		return
	}
	color.Green("Admin user ready (%s)", email)
}

func seedLevels(db *gorm.DB) {
	color.Yellow("\n[2] Interview levels")

	levels := []struct {
		Name      string
		Overview  string
		Questions []model.Question
	}{
		{
			Name:     "beginner",
			Overview: "A first technical conversation. Expect one warm-up problem and one short coding exercise.",
			Questions: []model.Question{
				{Title: "Warm-up", Description: "Walk through reversing a string without library helpers.", Answer: "Look for two-pointer swap and off-by-one handling.", SortOrder: 1},
				{Title: "Array sums", Description: "Given an array and a target, find two numbers that sum to it.", Answer: "Hash map single pass; brute force is acceptable with a prompt toward O(n).", SortOrder: 2},
			},
		},
		{
			Name:     "intermediate",
			Overview: "A standard technical screen: data structures, one design discussion.",
			Questions: []model.Question{
				{Title: "Linked list cycle", Description: "Detect whether a linked list contains a cycle.", Answer: "Floyd's slow/fast pointers. Bonus: find cycle start.", SortOrder: 1},
				{Title: "Rate limiter sketch", Description: "Sketch a per-user rate limiter for an API gateway.", Answer: "Token bucket or sliding window; discuss storage and clock skew.", SortOrder: 2},
			},
		},
	}

	for _, l := range levels {
		level := model.Level{
			Id:       uuid.New(),
			Name:     l.Name,
			Overview: l.Overview,
		}
		result := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).Create(&level)
		if result.Error != nil {
			color.Red("Failed to seed level %s: %v", l.Name, result.Error)
			continue
		}
		if result.RowsAffected == 0 {
			color.Green("Level %s already present, skipping questions", l.Name)
			continue
		}

		for i := range l.Questions {
			l.Questions[i].Id = uuid.New()
			l.Questions[i].LevelId = level.Id
			if err := db.Create(&l.Questions[i]).Error; err != nil {
				color.Red("Failed to seed question %q: %v", l.Questions[i].Title, err)
			}
		}
		color.Green("Level %s seeded with %d questions", l.Name, len(l.Questions))
	}
}
