package domain

import "fmt"

type Label string

const (
	LabelGood  Label = "good"
	LabelBad   Label = "bad"
	LabelError Label = "error"
)

// User-facing verdict messages.
const (
	MessageBad          = "🔴 DANGER: PHISHING DETECTED! This site exhibits characteristics commonly associated with malicious links. Do not proceed."
	MessageGood         = "✅ SAFE: This URL appears legitimate and is likely safe to visit."
	MessageSystemError  = "System Error: Model files could not be loaded from storage. Check logs and model URLs."
	MessageUnknownLabel = "Error in prediction. Please try again. ❓"
	MessageMissingInput = "Please submit a URL to check."
)

// Verdict is the result of classifying one URL.
// Warnings is non-empty only when Label is LabelBad.
type Verdict struct {
	Label    Label
	Message  string
	Warnings []string
	// Fault is set when Label is LabelError.
	Fault error
}

func (v Verdict) IsError() bool {
	return v.Label == LabelError
}

// FaultMessage renders the user-visible message for a per-request fault.
func FaultMessage(err error) string {
	return fmt.Sprintf("An unexpected error occurred during the prediction process: %s. 🛑", FaultKind(err))
}
