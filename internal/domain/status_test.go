package domain

import "testing"

func TestValidStatus(t *testing.T) {
	validStatuses := []string{"verified", "false", "partially_true", "ambiguous", "unverifiable"}
	for _, status := range validStatuses {
		if !ValidStatus(status) {
			t.Errorf("ValidStatus(%q) = false, want true", status)
		}
	}

	invalidStatuses := []string{"", "unknown", "VERIFIED", "Verified", "partially true"}
	for _, status := range invalidStatuses {
		if ValidStatus(status) {
			t.Errorf("ValidStatus(%q) = true, want false", status)
		}
	}
}

func TestAllStatuses(t *testing.T) {
	statuses := AllStatuses()
	if len(statuses) != 5 {
		t.Errorf("AllStatuses() returned %d statuses, want 5", len(statuses))
	}

	// Report blocks render in this exact order.
	expected := []VerdictStatus{StatusVerified, StatusFalse, StatusPartiallyTrue, StatusAmbiguous, StatusUnverifiable}
	for i, status := range statuses {
		if status != expected[i] {
			t.Errorf("AllStatuses()[%d] = %v, want %v", i, status, expected[i])
		}
	}
}

func TestGetStatusConfig(t *testing.T) {
	tests := []struct {
		name       string
		status     VerdictStatus
		wantLabel  string
		wantSymbol string
		wantColor  string
	}{
		{"verified", StatusVerified, "Verified", "✅", "green"},
		{"false", StatusFalse, "False", "❌", "red"},
		{"partially true", StatusPartiallyTrue, "Partially True", "⚠️", "yellow"},
		{"ambiguous", StatusAmbiguous, "Ambiguous", "❓", "blue"},
		{"unverifiable", StatusUnverifiable, "Unverifiable", "➖", "gray"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := GetStatusConfig(tt.status)
			if cfg.Label != tt.wantLabel {
				t.Errorf("label = %q, want %q", cfg.Label, tt.wantLabel)
			}
			if cfg.Symbol != tt.wantSymbol {
				t.Errorf("symbol = %q, want %q", cfg.Symbol, tt.wantSymbol)
			}
			if cfg.Color != tt.wantColor {
				t.Errorf("color = %q, want %q", cfg.Color, tt.wantColor)
			}
		})
	}
}

func TestGetStatusConfig_UnknownStatus(t *testing.T) {
	cfg := GetStatusConfig(VerdictStatus("hallucinated"))
	if cfg.Label != "Ambiguous" {
		t.Errorf("unknown status should fall back to ambiguous config, got label %q", cfg.Label)
	}

	cfg = GetStatusConfig(VerdictStatus(""))
	if cfg.Label != "Ambiguous" {
		t.Errorf("missing status should fall back to ambiguous config, got label %q", cfg.Label)
	}
}

func TestStatusCountsCount(t *testing.T) {
	counts := StatusCounts{Verified: 3, False: 2, PartiallyTrue: 1, Ambiguous: 4, Unverifiable: 5}

	tests := []struct {
		status VerdictStatus
		want   int
	}{
		{StatusVerified, 3},
		{StatusFalse, 2},
		{StatusPartiallyTrue, 1},
		{StatusAmbiguous, 4},
		{StatusUnverifiable, 5},
		{VerdictStatus("unknown"), 0},
	}

	for _, tt := range tests {
		if got := counts.Count(tt.status); got != tt.want {
			t.Errorf("Count(%v) = %d, want %d", tt.status, got, tt.want)
		}
	}

	if counts.Total() != 15 {
		t.Errorf("Total() = %d, want 15", counts.Total())
	}
}

func TestStatusCountsZeroValue(t *testing.T) {
	var counts StatusCounts
	for _, status := range AllStatuses() {
		if counts.Count(status) != 0 {
			t.Errorf("zero-value Count(%v) = %d, want 0", status, counts.Count(status))
		}
	}
	if counts.Total() != 0 {
		t.Errorf("zero-value Total() = %d, want 0", counts.Total())
	}
}

func TestValidInputMode(t *testing.T) {
	for _, mode := range []string{"text", "file"} {
		if !ValidInputMode(mode) {
			t.Errorf("ValidInputMode(%q) = false, want true", mode)
		}
	}
	for _, mode := range []string{"", "url", "TEXT"} {
		if ValidInputMode(mode) {
			t.Errorf("ValidInputMode(%q) = true, want false", mode)
		}
	}
}

func TestInputStateSourceLabel(t *testing.T) {
	tests := []struct {
		name  string
		state InputState
		want  string
	}{
		{"text mode", InputState{Mode: InputModeText, Text: "some text"}, "text"},
		{"file mode with name", InputState{Mode: InputModeFile, FileName: "notes.txt"}, "notes.txt"},
		{"file mode without name", InputState{Mode: InputModeFile}, "file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.SourceLabel(); got != tt.want {
				t.Errorf("SourceLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}
