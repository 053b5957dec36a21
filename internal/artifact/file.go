package artifact

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"photo_archive/internal/domain"
)

// FileSource reads the artifact from the build output on disk. Used when the
// serve process runs on the same host as the build.
type FileSource struct {
	path string
}

func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Load(_ context.Context) ([]domain.DayRecord, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read artifact: %w", err)
	}

	var days []domain.DayRecord
	if err := json.Unmarshal(data, &days); err != nil {
		return nil, fmt.Errorf("decode artifact: %w", err)
	}

	return days, nil
}
