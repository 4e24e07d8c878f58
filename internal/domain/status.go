package domain

type VerdictStatus string

const (
	StatusVerified      VerdictStatus = "verified"
	StatusFalse         VerdictStatus = "false"
	StatusPartiallyTrue VerdictStatus = "partially_true"
	StatusAmbiguous     VerdictStatus = "ambiguous"
	StatusUnverifiable  VerdictStatus = "unverifiable"
)

func ValidStatus(s string) bool {
	switch VerdictStatus(s) {
	case StatusVerified, StatusFalse, StatusPartiallyTrue, StatusAmbiguous, StatusUnverifiable:
		return true
	}
	return false
}

// AllStatuses returns the five statuses in canonical report order.
func AllStatuses() []VerdictStatus {
	return []VerdictStatus{StatusVerified, StatusFalse, StatusPartiallyTrue, StatusAmbiguous, StatusUnverifiable}
}

// StatusConfig is the fixed display configuration for one verdict status.
// Color is a semantic name resolved to a concrete style by the renderer.
type StatusConfig struct {
	Label  string
	Symbol string
	Color  string
}

var StatusConfigs = map[VerdictStatus]StatusConfig{
	StatusVerified:      {Label: "Verified", Symbol: "✅", Color: "green"},
	StatusFalse:         {Label: "False", Symbol: "❌", Color: "red"},
	StatusPartiallyTrue: {Label: "Partially True", Symbol: "⚠️", Color: "yellow"},
	StatusAmbiguous:     {Label: "Ambiguous", Symbol: "❓", Color: "blue"},
	StatusUnverifiable:  {Label: "Unverifiable", Symbol: "➖", Color: "gray"},
}

// GetStatusConfig resolves the display configuration for a status.
// Unknown or missing statuses fall back to the ambiguous configuration so
// one malformed record never breaks a whole render.
func GetStatusConfig(s VerdictStatus) StatusConfig {
	if cfg, ok := StatusConfigs[s]; ok {
		return cfg
	}
	return StatusConfigs[StatusAmbiguous]
}
