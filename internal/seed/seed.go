package seed

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"galleria/internal/model"
	"galleria/internal/repository"
)

const bcryptCost = 10

// Seeder populates the catalog with its baseline reference data:
// three artists, one admin account and three pictures owned by the
// admin. Running it repeatedly never duplicates anything.
type Seeder struct {
	users    repository.UserRepository
	artists  repository.ArtistRepository
	pictures repository.PictureRepository

	adminUsername string
	adminPassword string
}

// New creates a seeder with admin credentials from configuration.
func New(
	users repository.UserRepository,
	artists repository.ArtistRepository,
	pictures repository.PictureRepository,
	adminUsername, adminPassword string,
) *Seeder {
	return &Seeder{
		users:         users,
		artists:       artists,
		pictures:      pictures,
		adminUsername: adminUsername,
		adminPassword: adminPassword,
	}
}

// Run seeds initial data. Gated on the picture count, so a populated
// database is left untouched.
func (s *Seeder) Run(ctx context.Context) error {
	count, err := s.pictures.Count(ctx)
	if err != nil {
		return fmt.Errorf("count pictures: %w", err)
	}
	if count > 0 {
		log.Println("seed: initial data already present, skipping")
		return nil
	}

	artists, err := s.ensureArtists(ctx)
	if err != nil {
		return err
	}

	admin, err := s.ensureAdmin(ctx)
	if err != nil {
		return err
	}

	if err := s.createPictures(ctx, artists, admin); err != nil {
		return err
	}

	log.Println("seed: initial data created")
	return nil
}

func (s *Seeder) ensureArtists(ctx context.Context) (map[string]*model.Artist, error) {
	count, err := s.artists.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count artists: %w", err)
	}

	if count == 0 {
		for i := range initialArtists {
			if err := s.artists.Create(ctx, &initialArtists[i]); err != nil {
				return nil, fmt.Errorf("create artist %q: %w", initialArtists[i].Name, err)
			}
		}
	}

	existing, err := s.artists.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list artists: %w", err)
	}
	byName := make(map[string]*model.Artist, len(existing))
	for i := range existing {
		byName[existing[i].Name] = &existing[i]
	}
	return byName, nil
}

func (s *Seeder) ensureAdmin(ctx context.Context) (*model.User, error) {
	admin, err := s.users.FindByUsername(ctx, s.adminUsername)
	if err == nil {
		return admin, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("find admin: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(s.adminPassword), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash admin password: %w", err)
	}
	admin = &model.User{
		Username:     s.adminUsername,
		PasswordHash: string(hashed),
		Role:         model.RoleAdmin,
	}
	if err := s.users.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

func (s *Seeder) createPictures(ctx context.Context, artists map[string]*model.Artist, owner *model.User) error {
	for _, p := range initialPictures {
		picture := p.picture
		picture.UserID = owner.ID
		if artist, ok := artists[p.artistName]; ok {
			id := artist.ID
			picture.ArtistID = &id
		}
		if err := s.pictures.Create(ctx, &picture); err != nil {
			return fmt.Errorf("create picture %q: %w", picture.Title, err)
		}
	}
	return nil
}

func date(year int, month time.Month, day int) *time.Time {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &t
}

var initialArtists = []model.Artist{
	{
		Name:        "Vincent van Gogh",
		Bio:         "Dutch Post-Impressionist painter",
		BirthDate:   date(1853, time.March, 30),
		DeathDate:   date(1890, time.July, 29),
		Nationality: "Dutch",
	},
	{
		Name:        "Leonardo da Vinci",
		Bio:         "Italian painter, scientist and inventor",
		BirthDate:   date(1452, time.April, 15),
		DeathDate:   date(1519, time.May, 2),
		Nationality: "Italian",
	},
	{
		Name:        "Pablo Picasso",
		Bio:         "Spanish painter, sculptor, printmaker, ceramicist and designer",
		BirthDate:   date(1881, time.October, 25),
		DeathDate:   date(1973, time.April, 8),
		Nationality: "Spanish",
	},
}

type seedPicture struct {
	artistName string
	picture    model.Picture
}

var initialPictures = []seedPicture{
	{
		artistName: "Vincent van Gogh",
		picture: model.Picture{
			Title:       "The Starry Night",
			Artist:      "Vincent van Gogh",
			Year:        1889,
			Description: "The view from the east-facing window of his asylum room at Saint-Remy-de-Provence",
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ea/Van_Gogh_-_Starry_Night_-_Google_Art_Project.jpg/800px-Van_Gogh_-_Starry_Night_-_Google_Art_Project.jpg",
			Style:       "Post-Impressionism",
			Price:       decimal.NewFromFloat(1000000.00),
			Size:        "73.7 x 92.1 cm",
		},
	},
	{
		artistName: "Leonardo da Vinci",
		picture: model.Picture{
			Title:       "Mona Lisa",
			Artist:      "Leonardo da Vinci",
			Year:        1503,
			Description: "Portrait of Lisa del Giocondo",
			ImageURL:    "https://upload.wikimedia.org/wikipedia/commons/thumb/e/ec/Mona_Lisa%2C_by_Leonardo_da_Vinci%2C_from_C2RMF_retouched.jpg/800px-Mona_Lisa%2C_by_Leonardo_da_Vinci%2C_from_C2RMF_retouched.jpg",
			Style:       "Renaissance",
			Price:       decimal.NewFromFloat(8600000.00),
			Size:        "77 x 53 cm",
		},
	},
	{
		artistName: "Pablo Picasso",
		picture: model.Picture{
			Title:       "Les Demoiselles d'Avignon",
			Artist:      "Pablo Picasso",
			Year:        1907,
			Description: "A seminal work in the development of Cubism",
			ImageURL:    "https://upload.wikimedia.org/wikipedia/en/thumb/4/4c/Les_Demoiselles_d%27Avignon.jpg/800px-Les_Demoiselles_d%27Avignon.jpg",
			Style:       "Cubism",
			Price:       decimal.NewFromFloat(3500000.00),
			Size:        "243.9 x 233.7 cm",
		},
	},
}
