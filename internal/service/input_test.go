package service

import (
	"errors"
	"testing"

	"github.com/Harshitk-cp/veritas/internal/domain"
)

func TestResolveInput_TextMode(t *testing.T) {
	// The raw buffer is used verbatim, surrounding whitespace included.
	state := domain.InputState{
		Mode:          domain.InputModeText,
		Text:          "  The Eiffel Tower is 330 meters tall.  ",
		ExtractedText: "ignored document text",
	}

	got, err := ResolveInput(state)
	if err != nil {
		t.Fatalf("ResolveInput failed: %v", err)
	}
	if got != state.Text {
		t.Errorf("ResolveInput = %q, want verbatim raw buffer", got)
	}
}

func TestResolveInput_FileMode(t *testing.T) {
	state := domain.InputState{
		Mode:          domain.InputModeFile,
		Text:          "ignored raw buffer",
		ExtractedText: "Extracted document text.",
		FileName:      "notes.txt",
	}

	got, err := ResolveInput(state)
	if err != nil {
		t.Fatalf("ResolveInput failed: %v", err)
	}
	if got != "Extracted document text." {
		t.Errorf("ResolveInput = %q, want extracted text", got)
	}
}

func TestResolveInput_WhitespaceOnly(t *testing.T) {
	// Whitespace-only input is rejected before anything reaches the network.
	tests := []struct {
		name  string
		state domain.InputState
	}{
		{"text mode spaces", domain.InputState{Mode: domain.InputModeText, Text: "   "}},
		{"text mode empty", domain.InputState{Mode: domain.InputModeText, Text: ""}},
		{"text mode newlines", domain.InputState{Mode: domain.InputModeText, Text: "\n\t "}},
		{"file mode never extracted", domain.InputState{Mode: domain.InputModeFile, Text: "typed text"}},
		{"file mode cleared", domain.InputState{Mode: domain.InputModeFile, ExtractedText: " \n"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveInput(tt.state)
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("expected ErrEmptyInput, got %v", err)
			}
		})
	}
}

func TestResolveInput_InvalidMode(t *testing.T) {
	_, err := ResolveInput(domain.InputState{Mode: domain.InputMode("url"), Text: "text"})
	if !errors.Is(err, ErrInvalidInputMode) {
		t.Errorf("expected ErrInvalidInputMode, got %v", err)
	}
}
