package hubapi

// DetailedError is the wire shape of a failed request.
type DetailedError struct {
	Code    string          `json:"code"`
	Message string          `json:"message"`
	Status  int             `json:"status"`
	Context *map[string]any `json:"context,omitempty"`
}

// ErrorMessage wraps a DetailedError in the response envelope.
type ErrorMessage struct {
	Error DetailedError `json:"error"`
}

// ListMeta carries pagination data on list responses.
type ListMeta struct {
	Count int `json:"count"`
	Skip  int `json:"skip"`
	Top   int `json:"top"`
}
