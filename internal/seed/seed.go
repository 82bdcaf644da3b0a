// Package seed provides database seeding utilities for development and
// testing.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"bitacora/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumPosts    int
	NumComments int
	ShouldClean bool
}

// Seed populates the database with test data.
func Seed(db *gorm.DB, opts Options) error {
	gofakeit.Seed(time.Now().UnixNano())

	log.Printf("🌱 Starting database seeding with %d users, %d posts, %d comments...",
		opts.NumUsers, opts.NumPosts, opts.NumComments)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	users, err := createUsers(db, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	posts, err := createPosts(db, users, opts.NumPosts)
	if err != nil {
		return fmt.Errorf("failed to create posts: %w", err)
	}
	log.Printf("✓ %d posts created", len(posts))

	comments, err := createComments(db, users, posts, opts.NumComments)
	if err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Printf("✓ %d comments created", comments)

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comments, posts, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(db *gorm.DB, count int) ([]models.User, error) {
	users := make([]models.User, 0, count)
	hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	// A couple of well-known accounts for manual testing
	if count >= 2 {
		for _, name := range []string{"admin", "test"} {
			user := models.User{
				Name:     name,
				Email:    fmt.Sprintf("%s@example.com", name),
				Password: string(hashedPassword),
			}
			if err := db.Where(models.User{Email: user.Email}).FirstOrCreate(&user).Error; err != nil {
				return nil, err
			}
			users = append(users, user)
		}
	}

	for i := len(users); i < count; i++ {
		user := models.User{
			Name:     gofakeit.Name(),
			Email:    gofakeit.Email(),
			Password: string(hashedPassword),
		}
		if err := db.Create(&user).Error; err != nil {
			// duplicate fake email, skip and keep going
			continue
		}
		users = append(users, user)
	}
	return users, nil
}

func createPosts(db *gorm.DB, users []models.User, count int) ([]models.Post, error) {
	if len(users) == 0 {
		return nil, fmt.Errorf("no users to attach posts to")
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	posts := make([]models.Post, 0, count)

	for i := 0; i < count; i++ {
		owner := users[r.Intn(len(users))]
		post := models.Post{
			Title:   gofakeit.Sentence(5),
			Content: gofakeit.Paragraph(1, 3, 5, "\n"),
			UserID:  owner.ID,
			// realistic created_at spread over the last 90 days
			CreatedAt: time.Now().Add(-time.Duration(r.Intn(90*24)) * time.Hour),
		}
		if err := db.Create(&post).Error; err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, nil
}

func createComments(db *gorm.DB, users []models.User, posts []models.Post, count int) (int, error) {
	if len(posts) == 0 {
		return 0, nil
	}

	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	created := 0

	for i := 0; i < count; i++ {
		comment := models.Comment{
			Content: gofakeit.Sentence(10),
			UserID:  users[r.Intn(len(users))].ID,
			PostID:  posts[r.Intn(len(posts))].ID,
		}
		if err := db.Create(&comment).Error; err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
