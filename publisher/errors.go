package publisher

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrPageIDRequired      = errors.New("publisher: page id is required")
	ErrUserIDRequired      = errors.New("publisher: user id is required")
	ErrGenerationInFlight  = errors.New("publisher: generation already in flight for page")
	ErrValidationFailed    = errors.New("publisher: validation failed")
	ErrPageNotAccessible   = errors.New("publisher: generated page is not accessible")
	ErrRendererRequired    = errors.New("publisher: renderer is required")
	ErrStoreRequired       = errors.New("publisher: hosting store is required")
	ErrGenerationCancelled = errors.New("publisher: generation cancelled")
)

// GenerationError carries the stage a run failed in together with the
// human-readable message emitted on the failed status event. The returned
// error and the status event always carry the same message.
type GenerationError struct {
	PageID  string
	Stage   Stage
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	message := strings.TrimSpace(e.Message)
	if message == "" {
		message = "generation failed"
	}
	return fmt.Sprintf("publisher: page %s failed during %s: %s", e.PageID, e.Stage, message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
