package get_students

import (
	"context"

	"github.com/linkup-team/linkup-gateway/internal/service/directory"
)

type DirectoryService interface {
	Students(ctx context.Context) ([]directory.StudentProfile, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
