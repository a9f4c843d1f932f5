// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/gokulsivas/ThinkSync/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	researchTopics = []string{
		"Machine Learning", "Natural Language Processing", "Computer Vision",
		"Quantum Computing", "Robotics", "Control Theory", "Bioinformatics",
		"Computational Neuroscience", "Climate Modeling", "Materials Science",
		"Cryptography", "Distributed Systems", "Human-Computer Interaction",
		"Epidemiology", "Astrophysics", "Genomics", "Renewable Energy",
	}

	regions = []string{
		"North America", "Europe", "Asia", "Africa", "South America", "Oceania",
	}

	institutionTypes = []string{
		"University", "Institute", "Industry Lab", "Government Lab", "Hospital",
	}

	fundingStatuses = []string{
		"Funded", "Seeking Funding", "Self-Funded",
	}
)

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
	rng  *rand.Rand
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	//nolint:gosec // Weak random number generator is fine for seeding
	return &Factory{db: db, opts: opts, rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// CreateUser constructs and persists a researcher account with an attached
// profile. Optional override functions may modify the generated user before
// saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	name := gofakeit.Name()
	user := &models.User{
		Email:       gofakeit.Email(),
		Name:        name,
		Title:       gofakeit.JobTitle(),
		Affiliation: fmt.Sprintf("%s University", gofakeit.City()),
		Role:        models.RoleUser,
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.PasswordHash = "password123"
	} else {
		hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.PasswordHash = string(hashed)
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}

	profile := &models.Profile{
		UserID:            user.ID,
		HIndex:            f.rng.Intn(60),
		Bio:               gofakeit.Sentence(12),
		Website:           gofakeit.URL(),
		ResearchInterests: f.pickTopics(1 + f.rng.Intn(3)),
		Awards:            []string{},
		IsPublic:          f.rng.Float32() < 0.85,
		Region:            regions[f.rng.Intn(len(regions))],
		InstitutionType:   institutionTypes[f.rng.Intn(len(institutionTypes))],
		FundingStatus:     fundingStatuses[f.rng.Intn(len(fundingStatuses))],
		PublicationCount:  f.rng.Intn(250),
		IsActive:          f.rng.Float32() < 0.9,
	}
	if err := f.db.Create(profile).Error; err != nil {
		return nil, err
	}
	user.Profile = profile

	return user, nil
}

func (f *Factory) pickTopics(n int) []string {
	picked := make([]string, 0, n)
	seen := map[int]bool{}
	for len(picked) < n {
		i := f.rng.Intn(len(researchTopics))
		if seen[i] {
			continue
		}
		seen[i] = true
		picked = append(picked, researchTopics[i])
	}
	return picked
}

// CreatePost constructs and persists a post for the given user in the given
// moderation state, with a realistic created_at spread.
func (f *Factory) CreatePost(user *models.User, status models.PostStatus, overrides ...func(*models.Post)) (*models.Post, error) {
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	daysBack := f.rng.Intn(maxDays)
	hoursBack := f.rng.Intn(24)

	post := &models.Post{
		AuthorID:  user.ID,
		Content:   gofakeit.Paragraph(1, 3, 8, "\n"),
		Status:    status,
		CreatedAt: time.Now().Add(-time.Duration(daysBack)*24*time.Hour - time.Duration(hoursBack)*time.Hour),
	}

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateConversation persists a direct conversation between two users,
// including both participant rows.
func (f *Factory) CreateConversation(a, b *models.User) (*models.Conversation, error) {
	conv := &models.Conversation{CreatedBy: a.ID}
	if err := f.db.Create(conv).Error; err != nil {
		return nil, err
	}
	for _, userID := range []uint{a.ID, b.ID} {
		participant := &models.ConversationParticipant{
			ConversationID: conv.ID,
			UserID:         userID,
		}
		if err := f.db.Create(participant).Error; err != nil {
			return nil, err
		}
	}
	return conv, nil
}

// CreateMessage constructs and persists a message in the provided
// conversation from the provided sender.
func (f *Factory) CreateMessage(conversation *models.Conversation, sender *models.User, overrides ...func(*models.Message)) (*models.Message, error) {
	message := &models.Message{
		ConversationID: conversation.ID,
		SenderID:       sender.ID,
		Content:        gofakeit.Sentence(10),
	}

	for _, override := range overrides {
		override(message)
	}

	if err := f.db.Create(message).Error; err != nil {
		return nil, err
	}
	return message, nil
}
