package entity

// Phase is the presentation phase of the desk.
type Phase string

const (
	PhaseLoading Phase = "loading"
	PhaseError   Phase = "error"
	PhaseReady   Phase = "ready"
)

// UIState is a snapshot of the screen state machine.
// ActiveChannel is non-nil only in PhaseReady.
type UIState struct {
	Phase         Phase      `json:"phase"`
	ErrorMessage  string     `json:"error_message,omitempty"`
	ActiveChannel *Channel   `json:"active_channel,omitempty"`
	Status        string     `json:"status,omitempty"`
	BanPrompt     *BanPrompt `json:"ban_prompt,omitempty"`
}
