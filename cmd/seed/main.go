// Command main runs the database seeder for FitTrack.
package main

import (
	"flag"
	"log"

	"fittrack/internal/config"
	"fittrack/internal/database"
	"fittrack/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 10, "Number of demo users to create")
	mealsPerUser := flag.Int("meals", 30, "Meal entries per user")
	workoutsPerUser := flag.Int("workouts", 15, "Completed workouts per user")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	catalogOnly := flag.Bool("catalog-only", false, "Seed only the food and workout catalogs")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	if *catalogOnly {
		if err := seed.Catalog(db); err != nil {
			log.Fatalf("Catalog seeding failed: %v", err)
		}
		log.Println("Catalog seeded.")
		return
	}

	opts := seed.Options{
		NumUsers:        *numUsers,
		MealsPerUser:    *mealsPerUser,
		WorkoutsPerUser: *workoutsPerUser,
		ShouldClean:     *shouldClean,
	}
	log.Printf("Seeding: %d users, %d meals and %d workouts each, clean=%v",
		opts.NumUsers, opts.MealsPerUser, opts.WorkoutsPerUser, opts.ShouldClean)

	if err := seed.Run(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done. All demo users have the password: password123")
}
