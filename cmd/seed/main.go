package main

import (
	"log"
	"os"

	"ecotrack-be/internal/model"
	"ecotrack-be/pkg/database"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
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

	color.Cyan("🌱 Seeding EcoTrack sample data")

	seedRecyclingCenters(db)

	color.Green("✅ Seeding complete")
}

// seedRecyclingCenters inserts the Kathmandu valley centers and their
// pickup schedules. Idempotent: skips when centers already exist.
func seedRecyclingCenters(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.RecyclingCenter{}).Count(&count).Error; err != nil {
		color.Red("Failed to count recycling centers: %v", err)
		return
	}
	if count > 0 {
		color.Yellow("Recycling centers already present, skipping")
		return
	}

	centers := []model.RecyclingCenter{
		{
			Id:           uuid.New(),
			Name:         "Kathmandu Metropolitan City Waste Management",
			Address:      "Teku, Kathmandu",
			City:         "Kathmandu",
			Latitude:     27.7000,
			Longitude:    85.3000,
			Phone:        "+977-1-4256909",
			AcceptsTypes: "organic, recyclable, hazardous",
			Hours:        "Mon-Sat: 8:00 AM - 5:00 PM",
			IsActive:     true,
		},
		{
			Id:           uuid.New(),
			Name:         "Green Waste Nepal",
			Address:      "Lalitpur, Kathmandu Valley",
			City:         "Lalitpur",
			Latitude:     27.6667,
			Longitude:    85.3167,
			Phone:        "+977-1-5521234",
			AcceptsTypes: "recyclable, electronic",
			Hours:        "Mon-Fri: 9:00 AM - 4:00 PM",
			IsActive:     true,
		},
		{
			Id:           uuid.New(),
			Name:         "Nepal Recycling Center",
			Address:      "Baneshwor, Kathmandu",
			City:         "Kathmandu",
			Latitude:     27.6833,
			Longitude:    85.3500,
			Phone:        "+977-1-4785234",
			AcceptsTypes: "recyclable, plastic, paper",
			Hours:        "Mon-Sat: 8:00 AM - 6:00 PM",
			IsActive:     true,
		},
	}

	if err := db.Create(&centers).Error; err != nil {
		color.Red("Failed to seed recycling centers: %v", err)
		return
	}
	color.Green("Seeded %d recycling centers", len(centers))

	schedules := []model.PickupSchedule{
		{
			RecyclingCenterId: centers[0].Id,
			Area:              "Kathmandu - Central",
			PickupDay:         "Monday",
			PickupTime:        "09:00 AM",
			WasteTypes:        "organic, recyclable",
			Frequency:         "weekly",
			IsActive:          true,
		},
		{
			RecyclingCenterId: centers[0].Id,
			Area:              "Kathmandu - North",
			PickupDay:         "Wednesday",
			PickupTime:        "09:00 AM",
			WasteTypes:        "organic, recyclable",
			Frequency:         "weekly",
			IsActive:          true,
		},
		{
			RecyclingCenterId: centers[1].Id,
			Area:              "Lalitpur",
			PickupDay:         "Friday",
			PickupTime:        "10:00 AM",
			WasteTypes:        "recyclable, electronic",
			Frequency:         "bi-weekly",
			IsActive:          true,
		},
	}

	if err := db.Create(&schedules).Error; err != nil {
		color.Red("Failed to seed pickup schedules: %v", err)
		return
	}
	color.Green("Seeded %d pickup schedules", len(schedules))
}
