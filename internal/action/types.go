package action

// Intent is one action the AI asked for.
type Intent struct {
	EntityID   string         `json:"entity_id"`
	Domain     string         `json:"domain"`
	Service    string         `json:"service"`
	Parameters map[string]any `json:"parameters,omitempty"`
}

// Name returns "domain.service".
func (i Intent) Name() string {
	return i.Domain + "." + i.Service
}

// Outcome is the result of dispatching one Intent. Failure is data, never an error.
type Outcome struct {
	EntityID string `json:"entity_id"`
	Action   string `json:"action"`
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
}
