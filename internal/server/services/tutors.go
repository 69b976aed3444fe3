package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/coursehub/internal/common"
	"github.com/dmitrijs2005/coursehub/internal/server/models"
	"github.com/dmitrijs2005/coursehub/internal/server/repositories/repomanager"
)

type TutorService struct {
	repomanager repomanager.RepositoryManager
}

func NewTutorService(m repomanager.RepositoryManager) *TutorService {
	return &TutorService{repomanager: m}
}

func (s *TutorService) Create(ctx context.Context, name, subject, bio string) (*models.TutorProfile, error) {
	tutor := &models.TutorProfile{
		Name:    strings.TrimSpace(name),
		Subject: strings.TrimSpace(subject),
		Bio:     strings.TrimSpace(bio),
	}
	if tutor.Name == "" || tutor.Subject == "" {
		return nil, fmt.Errorf("%w: name and subject are required", common.ErrValidation)
	}

	tutor, err := s.repomanager.Tutors().Create(ctx, tutor)
	if err != nil {
		return nil, fmt.Errorf("error creating tutor: %w", err)
	}
	return tutor, nil
}

func (s *TutorService) List(ctx context.Context) ([]models.TutorProfile, error) {
	tutors, err := s.repomanager.Tutors().List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing tutors: %w", err)
	}
	return tutors, nil
}
