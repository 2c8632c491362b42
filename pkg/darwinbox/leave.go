package darwinbox

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"hragent/pkg/dates"
)

// LeaveReport fetches approved leave records for one employee in a date range.
func (c *Client) LeaveReport(ctx context.Context, employeeNo, startDate, endDate string) json.RawMessage {
	if !validID(employeeNo) || !dates.Validate(startDate) || !dates.Validate(endDate) {
		return Failure(invalidParams)
	}
	from, _ := dates.Convert(startDate)
	to, _ := dates.Convert(endDate)
	payload := map[string]any{
		"api_key":     c.cfg.Leave.Report,
		"from":        from,
		"to":          to,
		"action":      "2", // report filter fixed to "approved"
		"action_from": from,
		"employee_no": []string{strings.TrimSpace(employeeNo)},
	}
	return c.call(ctx, "get_leave_report", "/leavesactionapi/leaveActionTakenLeaves", defaultTimeout, payload)
}

// LeaveBalance fetches leave balances for one or more employees, optionally
// filtered to specific leave types. Validation is left to the remote API.
func (c *Client) LeaveBalance(ctx context.Context, employeeNos, leaveNames []string) json.RawMessage {
	if leaveNames == nil {
		leaveNames = []string{}
	}
	payload := map[string]any{
		"api_key":         c.cfg.Leave.Balance,
		"ignore_rounding": "1",
		"employee_nos":    trimAll(employeeNos),
		"leave_names":     leaveNames,
	}
	return c.call(ctx, "get_leave_balance", "/leavesactionapi/leavebalance", defaultTimeout, payload)
}

// UpdateLeaveStatus approves, rejects, or revokes a specific leave request.
// The action is matched case-insensitively; anything outside the three known
// values fails locally without a network call.
func (c *Client) UpdateLeaveStatus(ctx context.Context, employeeNo, leaveID, action, managerMessage string) json.RawMessage {
	normalized := capitalize(action)
	switch normalized {
	case "Approved", "Rejected", "Revoked":
	default:
		return Failure(fmt.Sprintf("Invalid action: %s. Must be 'Approved', 'Rejected', or 'Revoked'.", action))
	}
	payload := map[string]any{
		"api_key":         c.cfg.Leave.Action,
		"employee_no":     strings.TrimSpace(employeeNo),
		"leave_id":        leaveID,
		"action":          normalized,
		"manager_message": managerMessage,
	}
	return c.call(ctx, "update_leave_status", "/leavesactionapi/leaveaction", defaultTimeout, payload)
}

// ApplyForLeave creates a new leave application on behalf of an employee.
// The import endpoint takes a record array even for a single application.
func (c *Client) ApplyForLeave(ctx context.Context, employeeNo, leaveName, startDate, endDate string, halfDay, firstHalf, paid bool, message string) json.RawMessage {
	if !validID(employeeNo) || !dates.Validate(startDate) || !dates.Validate(endDate) {
		return Failure(invalidParams)
	}
	if message == "" {
		message = "Applied via AI"
	}
	from, _ := dates.Convert(startDate)
	to, _ := dates.Convert(endDate)

	record := map[string]any{
		"employee_no":       strings.TrimSpace(employeeNo),
		"leave_name":        leaveName,
		"message":           message,
		"from_date":         from,
		"to_date":           to,
		"is_half_day":       yesNo(halfDay),
		"is_paid_or_unpaid": paidOrUnpaid(paid),
		"revoke_leave":      "no",
	}
	if halfDay {
		half := "2"
		if firstHalf {
			half = "1"
		}
		record["is_firsthalf_secondhalf"] = half
	}

	payload := map[string]any{
		"api_key": c.cfg.Leave.Import,
		"data":    []any{record},
	}
	return c.call(ctx, "apply_for_leave", "/leavesactionapi/importleave", defaultTimeout, payload)
}

// HolidayList fetches the holiday calendar for an employee. An empty year
// defaults to the current one.
func (c *Client) HolidayList(ctx context.Context, employeeNo, year string) json.RawMessage {
	if !validID(employeeNo) {
		return Failure("Invalid employee_no.")
	}
	if year == "" {
		year = strconv.Itoa(time.Now().Year())
	}
	payload := map[string]any{
		"api_key":     c.cfg.Leave.Holiday,
		"employee_no": strings.TrimSpace(employeeNo),
		"year":        year,
	}
	return c.call(ctx, "get_holiday_list", "/leavesactionapi/holidaylist", defaultTimeout, payload)
}

// EncashmentDetails fetches leave encashment records for an employee. The
// endpoint wants full day-start/day-end timestamps rather than bare dates.
func (c *Client) EncashmentDetails(ctx context.Context, employeeNo, startDate, endDate string) json.RawMessage {
	if !validID(employeeNo) || !dates.Validate(startDate) || !dates.Validate(endDate) {
		return Failure(invalidParams)
	}
	from, to, err := dates.DayBounds(startDate, endDate)
	if err != nil {
		return Failure(invalidParams)
	}
	payload := map[string]any{
		"api_key":     c.cfg.Leave.Encashment,
		"from":        from,
		"to":          to,
		"employee_no": []string{strings.TrimSpace(employeeNo)},
	}
	return c.call(ctx, "get_leave_encashment_details", "/leavesactionapi/encashmentDetails", defaultTimeout, payload)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func paidOrUnpaid(paid bool) string {
	if paid {
		return "paid"
	}
	return "unpaid"
}

// capitalize matches the remote API's expected casing: first letter upper,
// rest lower.
func capitalize(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
