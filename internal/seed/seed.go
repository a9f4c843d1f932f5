package seed

import (
	"fmt"
	"log"

	"github.com/gokulsivas/ThinkSync/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers   int
	NumPosts   int
	SkipBcrypt bool
	// MaxDays bounds how far back generated posts are dated
	MaxDays int
}

// Seeder populates the database with demo data.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB, opts Options) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db, opts)}
}

// ClearAll truncates all application tables.
func (s *Seeder) ClearAll() error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE saved_searches, messages, conversation_participants, conversations, posts, profiles, users RESTART IDENTITY CASCADE;`
	return s.db.Exec(sql).Error
}

// EnsureAdmin creates the well-known admin account if it does not exist.
// The admin gets a profile like everyone else so it appears in the directory.
func (s *Seeder) EnsureAdmin() (*models.User, error) {
	var admin models.User
	err := s.db.Where("email = ?", "admin@thinksync.dev").First(&admin).Error
	if err == nil {
		return &admin, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, err
	}

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	admin = models.User{
		Email:        "admin@thinksync.dev",
		PasswordHash: string(hashed),
		Name:         "ThinkSync Admin",
		Role:         models.RoleAdmin,
	}
	if err := s.db.Create(&admin).Error; err != nil {
		return nil, err
	}
	profile := models.Profile{
		UserID:            admin.ID,
		ResearchInterests: []string{},
		Awards:            []string{},
		IsPublic:          true,
		IsActive:          true,
	}
	if err := s.db.Create(&profile).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// SeedResearchers creates count researcher accounts with profiles.
func (s *Seeder) SeedResearchers(count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)
	for i := 0; i < count; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return nil, fmt.Errorf("create user %d: %w", i, err)
		}
		users = append(users, user)
		if i > 0 && i%100 == 0 {
			log.Printf("Created %d users...", i)
		}
	}
	return users, nil
}

// SeedPosts creates count posts spread across the given users. Roughly 60%
// are approved, 25% pending and 15% rejected, so every moderation state is
// represented in the demo data.
func (s *Seeder) SeedPosts(users []*models.User, count int) ([]*models.Post, error) {
	if len(users) == 0 {
		return nil, nil
	}
	posts := make([]*models.Post, 0, count)
	for i := 0; i < count; i++ {
		author := users[s.factory.rng.Intn(len(users))]
		status := models.PostStatusApproved
		switch roll := s.factory.rng.Float32(); {
		case roll < 0.15:
			status = models.PostStatusRejected
		case roll < 0.40:
			status = models.PostStatusPending
		}
		post, err := s.factory.CreatePost(author, status)
		if err != nil {
			return nil, fmt.Errorf("create post %d: %w", i, err)
		}
		posts = append(posts, post)
	}
	return posts, nil
}

// SeedConversations gives some user pairs a short message history.
func (s *Seeder) SeedConversations(users []*models.User, count int) error {
	if len(users) < 2 {
		return nil
	}
	for i := 0; i < count; i++ {
		a := users[s.factory.rng.Intn(len(users))]
		b := users[s.factory.rng.Intn(len(users))]
		if a.ID == b.ID {
			continue
		}
		conv, err := s.factory.CreateConversation(a, b)
		if err != nil {
			return fmt.Errorf("create conversation %d: %w", i, err)
		}
		turns := 2 + s.factory.rng.Intn(6)
		for t := 0; t < turns; t++ {
			sender := a
			if t%2 == 1 {
				sender = b
			}
			if _, err := s.factory.CreateMessage(conv, sender); err != nil {
				return fmt.Errorf("create message: %w", err)
			}
		}
	}
	return nil
}

// Seed runs the full demo population: an admin account, researchers with
// profiles, posts in every moderation state and a handful of conversations.
func (s *Seeder) Seed(opts Options) error {
	log.Printf("Seeding %d users and %d posts...", opts.NumUsers, opts.NumPosts)

	if _, err := s.EnsureAdmin(); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	users, err := s.SeedResearchers(opts.NumUsers)
	if err != nil {
		return fmt.Errorf("seed researchers: %w", err)
	}
	log.Printf("Created %d researchers", len(users))

	posts, err := s.SeedPosts(users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("seed posts: %w", err)
	}
	log.Printf("Created %d posts", len(posts))

	if err := s.SeedConversations(users, len(users)/4); err != nil {
		return fmt.Errorf("seed conversations: %w", err)
	}

	log.Println("Seeding completed")
	return nil
}
