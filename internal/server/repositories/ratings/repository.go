// Package ratings stores public course ratings.
package ratings

import (
	"context"

	"github.com/dmitrijs2005/coursehub/internal/server/models"
)

type Repository interface {
	// Create fills ID and CreatedAt.
	Create(ctx context.Context, rating *models.Rating) (*models.Rating, error)
	// List returns ratings newest first.
	List(ctx context.Context) ([]models.Rating, error)
	// Delete removes a rating. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error
}
