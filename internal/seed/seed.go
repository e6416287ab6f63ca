package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	appModels "github.com/oakfield/realty/internal/app/models"
	appRepos "github.com/oakfield/realty/internal/app/repositories"
	"github.com/oakfield/realty/internal/pkg/apperrors"
	"github.com/oakfield/realty/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultData seeds the demo realtor account, a default website
// theme and the marketing communities. Every step is idempotent so a
// restart never duplicates rows.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, username, password string, lgr zerolog.Logger) error {
	userRepo := appRepos.NewUserRepository(dbPool)
	themeRepo := appRepos.NewWebsiteThemeRepository(dbPool)

	lgr.Info().Msg("Checking/Creating default data...")
	var finalErr error

	// --- Demo realtor account --- //
	if _, err := userRepo.GetByUsername(ctx, username); err != nil {
		if !errors.Is(err, apperrors.ErrUserNotFound) {
			lgr.Error().Err(err).Msg("Error checking for seed user")
			finalErr = errors.Join(finalErr, err)
		} else {
			hash, hashErr := auth.HashPassword(password)
			if hashErr != nil {
				return fmt.Errorf("failed to hash seed password: %w", hashErr)
			}
			user := &appModels.User{
				Username:     username,
				PasswordHash: hash,
				FullName:     "Jordan Realtor",
				Email:        "jordan@oakfieldrealty.example",
				Role:         appModels.RoleRealtor,
			}
			if _, createErr := userRepo.Create(ctx, user); createErr != nil {
				lgr.Error().Err(createErr).Msg("Error creating seed user")
				finalErr = errors.Join(finalErr, createErr)
			} else {
				lgr.Info().Str("username", username).Msg("Seed user created")
			}
		}
	}

	// --- Default website theme --- //
	themes, err := themeRepo.List(ctx)
	if err != nil {
		lgr.Error().Err(err).Msg("Error listing website themes")
		finalErr = errors.Join(finalErr, err)
	} else if len(themes) == 0 {
		theme := &appModels.WebsiteTheme{
			Name:        "Classic",
			Description: "Default launch theme",
		}
		if _, err := themeRepo.Create(ctx, theme); err != nil && !errors.Is(err, apperrors.ErrThemeNameTaken) {
			lgr.Error().Err(err).Msg("Error creating default website theme")
			finalErr = errors.Join(finalErr, err)
		} else if err == nil {
			if err := themeRepo.Activate(ctx, theme.ID); err != nil {
				lgr.Error().Err(err).Msg("Error activating default website theme")
				finalErr = errors.Join(finalErr, err)
			}
		}
	}

	// --- Marketing communities --- //
	if err := seedCommunities(ctx, dbPool, lgr); err != nil {
		finalErr = errors.Join(finalErr, err)
	}

	return finalErr
}

func seedCommunities(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	communities := []appModels.Community{
		{Name: "Maple Grove", Location: "North Side", Image: "/assets/communities/maple-grove.jpg"},
		{Name: "Riverside Commons", Location: "East Bank", Image: "/assets/communities/riverside-commons.jpg"},
		{Name: "Oakfield Heights", Location: "Downtown", Image: "/assets/communities/oakfield-heights.jpg"},
	}

	var finalErr error
	for _, c := range communities {
		_, err := dbPool.Exec(ctx, `
			INSERT INTO communities (name, location, image)
			VALUES ($1, $2, $3)
			ON CONFLICT (name) DO NOTHING
		`, c.Name, c.Location, c.Image)
		if err != nil {
			lgr.Error().Err(err).Str("community", c.Name).Msg("Error seeding community")
			finalErr = errors.Join(finalErr, err)
		}
	}
	return finalErr
}
