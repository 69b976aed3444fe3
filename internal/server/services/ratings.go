package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/repomanager"
)

const (
	MinScore = 1
	MaxScore = 5
)

type RatingService struct {
	repomanager repomanager.RepositoryManager
}

func NewRatingService(m repomanager.RepositoryManager) *RatingService {
	return &RatingService{repomanager: m}
}

func (s *RatingService) Create(ctx context.Context, name, email string, score int, comment string) (*models.Rating, error) {
	rating := &models.Rating{
		Name:    strings.TrimSpace(name),
		Email:   NormalizeEmail(email),
		Score:   score,
		Comment: strings.TrimSpace(comment),
	}
	if rating.Name == "" || rating.Email == "" {
		return nil, fmt.Errorf("%w: name and email are required", common.ErrValidation)
	}
	if score < MinScore || score > MaxScore {
		return nil, fmt.Errorf("%w: rating must be between %d and %d", common.ErrValidation, MinScore, MaxScore)
	}

	rating, err := s.repomanager.Ratings().Create(ctx, rating)
	if err != nil {
		return nil, fmt.Errorf("error creating rating: %w", err)
	}
	return rating, nil
}

// List returns ratings newest first.
func (s *RatingService) List(ctx context.Context) ([]models.Rating, error) {
	ratings, err := s.repomanager.Ratings().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing ratings: %w", err)
	}
	return ratings, nil
}

// Delete is idempotent.
func (s *RatingService) Delete(ctx context.Context, id string) error {
	if err := s.repomanager.Ratings().Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting rating: %w", err)
	}
	return nil
}
