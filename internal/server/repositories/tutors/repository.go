// Package tutors stores the public tutor directory.
package tutors

import (
	"context"

	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

type Repository interface {
	// Create fills ID and CreatedAt.
	Create(ctx context.Context, tutor *models.TutorProfile) (*models.TutorProfile, error)
	// List returns profiles in creation order.
	List(ctx context.Context) ([]models.TutorProfile, error)
}
