// Command main runs the database seeder for ThinkSync.
package main

import (
	"flag"
	"log"

	"github.com/gokulsivas/ThinkSync/internal/config"
	"github.com/gokulsivas/ThinkSync/internal/database"
	"github.com/gokulsivas/ThinkSync/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of researcher accounts to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("ThinkSync database seeder")
	log.Printf("Target: %d users, %d posts, clean=%v", *numUsers, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{NumUsers: *numUsers, NumPosts: *numPosts}
	s := seed.NewSeeder(db, opts)

	if *shouldClean {
		if err := s.ClearAll(); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	if err := s.Seed(opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Done. All test users have the password: password123")
	log.Println("Admin account: admin@thinksync.dev")
}
