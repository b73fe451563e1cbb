package state

// Repository persists the text of the most recently sent notification.
// It is a single-slot store: saving replaces whatever was there before.
type Repository interface {
	// GetLastOutput returns the previously saved message text.
	// When nothing has ever been saved it returns the implementation's
	// not-found sentinel (see infra/storage.ErrNoLastOutput).
	GetLastOutput() (string, error)
	// SaveOutput overwrites the slot with the given message text.
	SaveOutput(message string) error
}
