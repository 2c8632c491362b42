package darwinbox

import "encoding/json"

// Every client operation resolves to exactly one of these two shapes. The
// model receives them as tool results and reasons about both the same way,
// so failures are data here, never Go errors.

type successEnvelope struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
}

type directoryEnvelope struct {
	Status        string          `json:"status"`
	EmployeeCount int             `json:"employee_count"`
	Data          json.RawMessage `json:"data"`
}

type errorEnvelope struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// Success wraps remote JSON in the uniform success envelope.
func Success(data json.RawMessage) json.RawMessage {
	return mustMarshal(successEnvelope{Status: "success", Data: data})
}

// Failure builds the uniform error envelope.
func Failure(message string) json.RawMessage {
	return mustMarshal(errorEnvelope{Error: message})
}

func failureDetails(message, details string) json.RawMessage {
	return mustMarshal(errorEnvelope{Error: message, Details: details})
}

func successWithCount(data json.RawMessage, count int) json.RawMessage {
	return mustMarshal(directoryEnvelope{Status: "success", EmployeeCount: count, Data: data})
}

func mustMarshal(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		return json.RawMessage(`{"error":"An unexpected error occurred: envelope encoding failed"}`)
	}
	return raw
}
