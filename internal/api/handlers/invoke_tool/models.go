package invoke_tool

import (
	"encoding/json"
	"fmt"
	"time"
)

// Tool argument shapes. policy_create and policy_list reuse the service
// request models directly; the rest are declared here.

type policyGetArgs struct {
	PolicyID string `json:"policyId"`
}

type policyUpdateArgs struct {
	PolicyID string          `json:"policyId"`
	Label    *string         `json:"label,omitempty"`
	Data     json.RawMessage `json:"data,omitempty"`
	IsActive *bool           `json:"isActive,omitempty"`
}

type policyDeleteArgs struct {
	PolicyID string `json:"policyId"`
}

type policyCheckArgs struct {
	ProviderID      string `json:"providerId"`
	Action          string `json:"action"`
	DateTime        string `json:"dateTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

type policyExplainArgs struct {
	ProviderID string `json:"providerId"`
}

// dateTimeLayouts are the accepted wire formats for proposed times, most
// specific first.
var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseDateTime(value string) (time.Time, error) {
	for _, layout := range dateTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("dateTime %q is not an ISO 8601 date-time", value)
}
