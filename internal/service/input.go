package service

import (
	"errors"
	"strings"

	"github.com/Harshitk-cp/veritas/internal/domain"
)

var (
	ErrEmptyInput       = errors.New("no text to analyze")
	ErrInvalidInputMode = errors.New("invalid input mode")
)

// ResolveInput selects the text payload eligible for analysis. Text mode
// uses the raw buffer verbatim; file mode uses the most recent successfully
// extracted document text. The resolved payload must be non-empty after
// trimming, otherwise ErrEmptyInput is returned and nothing reaches the
// network.
func ResolveInput(state domain.InputState) (string, error) {
	var text string
	switch state.Mode {
	case domain.InputModeText:
		text = state.Text
	case domain.InputModeFile:
		text = state.ExtractedText
	default:
		return "", ErrInvalidInputMode
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	return text, nil
}
