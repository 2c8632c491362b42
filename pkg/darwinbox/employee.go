package darwinbox

import (
	"context"
	"encoding/json"
)

// AllEmployees fetches master data for every employee. This is the only
// operation usable for name-to-ID resolution, so the success envelope is
// annotated with a derived employee_count. Large payload; longer timeout.
func (c *Client) AllEmployees(ctx context.Context) json.RawMessage {
	payload := map[string]any{
		"api_key":    c.cfg.EmployeeAPIKey,
		"datasetKey": c.cfg.EmployeeDatasetKey,
	}
	raw, errEnv := c.do(ctx, "get_all_employees", "/masterapi/employee", directoryTimeout, payload)
	if errEnv != nil {
		return errEnv
	}
	return successWithCount(raw, employeeCount(raw))
}

// EmployeeInfo fetches profile data for an explicit list of employee IDs.
func (c *Client) EmployeeInfo(ctx context.Context, employeeIDs []string) json.RawMessage {
	payload := map[string]any{
		"api_key":      c.cfg.EmployeeAPIKey,
		"datasetKey":   c.cfg.EmployeeDatasetKey,
		"employee_ids": trimAll(employeeIDs),
	}
	return c.call(ctx, "get_employee_info", "/masterapi/employee", infoTimeout, payload)
}

// employeeCount derives the record count from the directory response, which
// is either an object with a data array or a bare array.
func employeeCount(raw json.RawMessage) int {
	var obj struct {
		Data []json.RawMessage `json:"data"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil && obj.Data != nil {
		return len(obj.Data)
	}
	var list []json.RawMessage
	if err := json.Unmarshal(raw, &list); err == nil {
		return len(list)
	}
	return 0
}
