// internal/infra/storage/last_output_repository.go
package storage

import (
	"fmt"
	"os"
	"strings"
)

// ErrNoLastOutput signals the initial condition: no message has ever been
// saved. The notification service treats it as "different from anything".
var ErrNoLastOutput = fmt.Errorf("no last output recorded")

// FileRepository keeps the last sent message in a single plain-text file.
// Reads trim surrounding whitespace; writes truncate and overwrite.
type FileRepository struct {
	path string
}

func NewFileRepository(path string) *FileRepository {
	return &FileRepository{path: path}
}

func (r *FileRepository) GetLastOutput() (string, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", ErrNoLastOutput
		}
		return "", fmt.Errorf("error reading last output file %s: %w", r.path, err)
	}
	return strings.TrimSpace(string(data)), nil
}

func (r *FileRepository) SaveOutput(message string) error {
	if err := os.WriteFile(r.path, []byte(message), 0o644); err != nil {
		return fmt.Errorf("error writing last output file %s: %w", r.path, err)
	}
	return nil
}
