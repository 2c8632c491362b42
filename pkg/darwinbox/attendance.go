package darwinbox

import (
	"context"
	"encoding/json"

	"hragent/pkg/dates"
)

// DailyAttendanceStatus fetches presence and timings for one or more
// employees on a single date.
func (c *Client) DailyAttendanceStatus(ctx context.Context, employeeIDs []string, attendanceDate string) json.RawMessage {
	if !dates.Validate(attendanceDate) {
		return Failure("Invalid date format. Please use YYYY-MM-DD.")
	}
	converted, _ := dates.Convert(attendanceDate)
	payload := map[string]any{
		"api_key": c.cfg.Attendance.DailyStatus,
		// The hyphenated field name is the remote contract, not a typo.
		"emp-number_list": trimAll(employeeIDs),
		"attendance_date": converted,
	}
	return c.call(ctx, "get_daily_attendance_status", "/AttendanceDataApi/daily", defaultTimeout, payload)
}

// DailyAttendanceRoster fetches shift, status, and hours for a date range.
// Dates are passed through as given; the remote API validates them.
func (c *Client) DailyAttendanceRoster(ctx context.Context, employeeIDs []string, fromDate, toDate string) json.RawMessage {
	payload := map[string]any{
		"api_key":         c.cfg.Attendance.DailyRoster,
		"emp_number_list": trimAll(employeeIDs),
		"from_date":       fromDate,
		"to_date":         toDate,
	}
	return c.call(ctx, "get_daily_attendance_roster", "/attendanceDataApi/DailyAttendanceRoster", defaultTimeout, payload)
}

// AttendancePunches fetches raw punch-in/out records for a date range.
func (c *Client) AttendancePunches(ctx context.Context, employeeIDs []string, fromDate, toDate string) json.RawMessage {
	from, err := dates.Convert(fromDate)
	if err != nil {
		return Failure("An unexpected error occurred: " + err.Error())
	}
	to, err := dates.Convert(toDate)
	if err != nil {
		return Failure("An unexpected error occurred: " + err.Error())
	}
	payload := map[string]any{
		"api_key":         c.cfg.Attendance.Punches,
		"emp_number_list": trimAll(employeeIDs),
		"from_date":       from,
		"to_date":         to,
	}
	return c.call(ctx, "get_attendance_punches", "/AttendancePunchesApi", defaultTimeout, payload)
}

// MonthlyAttendance fetches the month summary. The month must be YYYY-MM,
// with no day component.
func (c *Client) MonthlyAttendance(ctx context.Context, employeeIDs []string, monthYear string) json.RawMessage {
	if !dates.ValidateMonth(monthYear) {
		return Failure("Invalid month_year format. Must be YYYY-MM.")
	}
	payload := map[string]any{
		"api_key":         c.cfg.Attendance.Monthly,
		"emp_number_list": trimAll(employeeIDs),
		"month":           monthYear,
	}
	return c.call(ctx, "get_monthly_attendance", "/AttendanceDataApi/monthly", defaultTimeout, payload)
}

// TimesheetDatewise fetches project/task timesheet data for a date range.
func (c *Client) TimesheetDatewise(ctx context.Context, employeeIDs []string, fromDate, toDate string) json.RawMessage {
	return c.datewise(ctx, "get_timesheet_datewise", "/attendanceDataApi/timesheetdatewise", c.cfg.Attendance.Timesheet, employeeIDs, fromDate, toDate)
}

// OvertimeDatewise fetches overtime data for a date range.
func (c *Client) OvertimeDatewise(ctx context.Context, employeeIDs []string, fromDate, toDate string) json.RawMessage {
	return c.datewise(ctx, "get_overtime_datewise", "/attendanceDataApi/getOverTimeDatewise", c.cfg.Attendance.Overtime, employeeIDs, fromDate, toDate)
}

// datewise is the shared shape of the timesheet and overtime endpoints.
func (c *Client) datewise(ctx context.Context, op, path, apiKey string, employeeIDs []string, fromDate, toDate string) json.RawMessage {
	from, err := dates.Convert(fromDate)
	if err != nil {
		return Failure("An unexpected error occurred: " + err.Error())
	}
	to, err := dates.Convert(toDate)
	if err != nil {
		return Failure("An unexpected error occurred: " + err.Error())
	}
	payload := map[string]any{
		"api_key":         apiKey,
		"from":            from,
		"to":              to,
		"emp_number_list": trimAll(employeeIDs),
	}
	return c.call(ctx, op, path, defaultTimeout, payload)
}
