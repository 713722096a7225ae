package model

// State is what the assistant bridge shares with the UI.
type State struct {
	RootNote  string `json:"rootNote"`
	Mode      string `json:"mode"`
	UpdatedAt string `json:"updatedAt,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type ModeResponse struct {
	Name        string `json:"name"`
	Intervals   []int  `json:"intervals"`
	Description string `json:"description"`
}
