package explain_policies

// Request identifies the provider whose policies should be described.
type Request struct {
	ProviderID string
}

// Response carries the rendered human-readable summary.
type Response struct {
	Explanation string `json:"explanation"`
}
