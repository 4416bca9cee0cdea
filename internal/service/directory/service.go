package directory

import (
	"context"
	"fmt"
)

// Service lists the mentor and student profiles a coffee chat can be
// proposed to. Pure pass-through reads; the backend owns the data.
type Service struct {
	api APIClient
	log Logger
}

// NewService creates a new directory service
func NewService(api APIClient, log Logger) *Service {
	return &Service{api: api, log: log}
}

// Mentors fetches all listed mentors
func (s *Service) Mentors(ctx context.Context) ([]MentorProfile, error) {
	var mentors []MentorProfile
	if err := s.api.Get(ctx, "/mentors", &mentors); err != nil {
		s.log.Error("Mentors: backend call failed: %v", err)
		return nil, fmt.Errorf("list mentors: %w", err)
	}

	s.log.Info("Mentors: fetched %d profiles", len(mentors))
	return mentors, nil
}

// Students fetches all listed students
func (s *Service) Students(ctx context.Context) ([]StudentProfile, error) {
	var students []StudentProfile
	if err := s.api.Get(ctx, "/students", &students); err != nil {
		s.log.Error("Students: backend call failed: %v", err)
		return nil, fmt.Errorf("list students: %w", err)
	}

	s.log.Info("Students: fetched %d profiles", len(students))
	return students, nil
}
