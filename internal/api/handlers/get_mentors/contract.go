package get_mentors

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/service/directory"
)

type DirectoryService interface {
	Mentors(ctx context.Context) ([]directory.MentorProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
