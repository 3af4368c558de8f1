package types

type (
	// CopyResult contains the outcome of a copy-to-clipboard operation.
	CopyResult struct {
		Success bool   `json:"success"`
		Text    string `json:"text,omitempty"`
		Count   int    `json:"count"`
		Notice  string `json:"notice,omitempty"`
	}
)
