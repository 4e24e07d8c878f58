package domain

type InputMode string

const (
	InputModeText InputMode = "text"
	InputModeFile InputMode = "file"
)

func ValidInputMode(m string) bool {
	switch InputMode(m) {
	case InputModeText, InputModeFile:
		return true
	}
	return false
}

// InputState carries the candidate text sources owned by the caller.
// Mode selects which source is eligible: the raw text buffer, or the most
// recent successfully extracted document text. The pipeline reads this
// state and never mutates it.
type InputState struct {
	Mode          InputMode
	Text          string
	ExtractedText string
	FileName      string
}

// SourceLabel names the input origin for history records and logs.
func (s InputState) SourceLabel() string {
	if s.Mode == InputModeFile {
		if s.FileName != "" {
			return s.FileName
		}
		return string(InputModeFile)
	}
	return string(InputModeText)
}
