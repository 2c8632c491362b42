package tooling

import (
	"context"
	"encoding/json"

	"github.com/openai/openai-go/v3"

	"hragent/pkg/darwinbox"
)

// hrTool binds an argument struct to a client operation. Arguments are
// schema-validated before run is invoked.
type hrTool[A any] struct {
	name        string
	description string
	run         func(ctx context.Context, args *A) json.RawMessage
}

func (t *hrTool[A]) Name() string        { return t.name }
func (t *hrTool[A]) Description() string { return t.description }

func (t *hrTool[A]) Parameters() openai.FunctionParameters {
	var args A
	return parameters(&args)
}

func (t *hrTool[A]) Call(ctx context.Context, raw json.RawMessage) json.RawMessage {
	var args A
	if env := decodeArgs(raw, &args); env != nil {
		return env
	}
	return t.run(ctx, &args)
}

type leaveReportArgs struct {
	EmployeeNo string `json:"employee_no" jsonschema_description:"Exact employee number"`
	StartDate  string `json:"start_date" jsonschema_description:"Range start in YYYY-MM-DD"`
	EndDate    string `json:"end_date" jsonschema_description:"Range end in YYYY-MM-DD"`
}

type leaveBalanceArgs struct {
	EmployeeNos []string `json:"employee_nos" jsonschema_description:"Exact employee numbers"`
	LeaveNames  []string `json:"leave_names,omitempty" jsonschema_description:"Optional filter to specific leave types"`
}

type updateLeaveStatusArgs struct {
	EmployeeNo     string `json:"employee_no"`
	LeaveID        string `json:"leave_id"`
	Action         string `json:"action" jsonschema_description:"One of Approved, Rejected, Revoked"`
	ManagerMessage string `json:"manager_message,omitempty"`
}

type applyForLeaveArgs struct {
	EmployeeNo  string `json:"employee_no"`
	LeaveName   string `json:"leave_name"`
	StartDate   string `json:"start_date" jsonschema_description:"Leave start in YYYY-MM-DD"`
	EndDate     string `json:"end_date" jsonschema_description:"Leave end in YYYY-MM-DD"`
	IsHalfDay   bool   `json:"is_half_day,omitempty"`
	IsFirstHalf *bool  `json:"is_first_half,omitempty" jsonschema_description:"For half-day leaves: first half when true, second half when false"`
	IsPaid      *bool  `json:"is_paid,omitempty"`
	Message     string `json:"message,omitempty"`
}

type holidayListArgs struct {
	EmployeeNo string `json:"employee_no"`
	Year       string `json:"year,omitempty" jsonschema_description:"Four-digit year; defaults to the current year"`
}

type encashmentArgs struct {
	EmployeeNo string `json:"employee_no"`
	StartDate  string `json:"start_date" jsonschema_description:"Range start in YYYY-MM-DD"`
	EndDate    string `json:"end_date" jsonschema_description:"Range end in YYYY-MM-DD"`
}

type dailyStatusArgs struct {
	EmployeeIDs    []string `json:"employee_ids"`
	AttendanceDate string   `json:"attendance_date" jsonschema_description:"Single date in YYYY-MM-DD"`
}

type dateRangeArgs struct {
	EmployeeIDs []string `json:"employee_ids"`
	FromDate    string   `json:"from_date" jsonschema_description:"Range start in YYYY-MM-DD"`
	ToDate      string   `json:"to_date" jsonschema_description:"Range end in YYYY-MM-DD"`
}

type monthlyAttendanceArgs struct {
	EmployeeIDs []string `json:"employee_ids"`
	MonthYear   string   `json:"month_year" jsonschema_description:"Month in YYYY-MM, e.g. 2025-10"`
}

type allEmployeesArgs struct{}

type employeeInfoArgs struct {
	EmployeeIDs []string `json:"employee_ids" jsonschema_description:"Exact employee numbers"`
}

// NewRegistry registers every Darwinbox operation as a tool.
func NewRegistry(client *darwinbox.Client) *Registry {
	r := &Registry{tools: map[string]Tool{}}

	r.register(&hrTool[leaveReportArgs]{
		name:        "get_leave_report",
		description: "Get approved leave records for an employee between start_date and end_date.",
		run: func(ctx context.Context, a *leaveReportArgs) json.RawMessage {
			return client.LeaveReport(ctx, a.EmployeeNo, a.StartDate, a.EndDate)
		},
	})
	r.register(&hrTool[leaveBalanceArgs]{
		name:        "get_leave_balance",
		description: "Get leave balance for one or more employees, optionally filtered by leave type.",
		run: func(ctx context.Context, a *leaveBalanceArgs) json.RawMessage {
			return client.LeaveBalance(ctx, a.EmployeeNos, a.LeaveNames)
		},
	})
	r.register(&hrTool[updateLeaveStatusArgs]{
		name:        "update_leave_status",
		description: "Approve, reject, or revoke a specific leave request by its leave_id.",
		run: func(ctx context.Context, a *updateLeaveStatusArgs) json.RawMessage {
			return client.UpdateLeaveStatus(ctx, a.EmployeeNo, a.LeaveID, a.Action, a.ManagerMessage)
		},
	})
	r.register(&hrTool[applyForLeaveArgs]{
		name:        "apply_for_leave",
		description: "Apply for a new leave on behalf of an employee.",
		run: func(ctx context.Context, a *applyForLeaveArgs) json.RawMessage {
			firstHalf, paid := true, true
			if a.IsFirstHalf != nil {
				firstHalf = *a.IsFirstHalf
			}
			if a.IsPaid != nil {
				paid = *a.IsPaid
			}
			return client.ApplyForLeave(ctx, a.EmployeeNo, a.LeaveName, a.StartDate, a.EndDate, a.IsHalfDay, firstHalf, paid, a.Message)
		},
	})
	r.register(&hrTool[holidayListArgs]{
		name:        "get_holiday_list",
		description: "Get the holiday calendar for an employee and year.",
		run: func(ctx context.Context, a *holidayListArgs) json.RawMessage {
			return client.HolidayList(ctx, a.EmployeeNo, a.Year)
		},
	})
	r.register(&hrTool[encashmentArgs]{
		name:        "get_leave_encashment_details",
		description: "Get leave encashment details for an employee in a date range.",
		run: func(ctx context.Context, a *encashmentArgs) json.RawMessage {
			return client.EncashmentDetails(ctx, a.EmployeeNo, a.StartDate, a.EndDate)
		},
	})
	r.register(&hrTool[dailyStatusArgs]{
		name:        "get_daily_attendance_status",
		description: "Get daily attendance status (present/absent, timings) for one or more employees on a single date.",
		run: func(ctx context.Context, a *dailyStatusArgs) json.RawMessage {
			return client.DailyAttendanceStatus(ctx, a.EmployeeIDs, a.AttendanceDate)
		},
	})
	r.register(&hrTool[dateRangeArgs]{
		name:        "get_daily_attendance_roster",
		description: "Get the daily attendance roster (shift, status, hours) for a date range.",
		run: func(ctx context.Context, a *dateRangeArgs) json.RawMessage {
			return client.DailyAttendanceRoster(ctx, a.EmployeeIDs, a.FromDate, a.ToDate)
		},
	})
	r.register(&hrTool[dateRangeArgs]{
		name:        "get_attendance_punches",
		description: "Get raw attendance punch-in/out records for a date range.",
		run: func(ctx context.Context, a *dateRangeArgs) json.RawMessage {
			return client.AttendancePunches(ctx, a.EmployeeIDs, a.FromDate, a.ToDate)
		},
	})
	r.register(&hrTool[monthlyAttendanceArgs]{
		name:        "get_monthly_attendance",
		description: "Get the monthly attendance summary. month_year must be YYYY-MM.",
		run: func(ctx context.Context, a *monthlyAttendanceArgs) json.RawMessage {
			return client.MonthlyAttendance(ctx, a.EmployeeIDs, a.MonthYear)
		},
	})
	r.register(&hrTool[dateRangeArgs]{
		name:        "get_timesheet_datewise",
		description: "Get timesheet data (projects, tasks) datewise for a date range.",
		run: func(ctx context.Context, a *dateRangeArgs) json.RawMessage {
			return client.TimesheetDatewise(ctx, a.EmployeeIDs, a.FromDate, a.ToDate)
		},
	})
	r.register(&hrTool[dateRangeArgs]{
		name:        "get_overtime_datewise",
		description: "Get overtime data for a date range.",
		run: func(ctx context.Context, a *dateRangeArgs) json.RawMessage {
			return client.OvertimeDatewise(ctx, a.EmployeeIDs, a.FromDate, a.ToDate)
		},
	})
	r.register(&hrTool[allEmployeesArgs]{
		name:        "get_all_employees",
		description: "Get the complete employee directory. Use this to find an employee's ID when the user asks by name.",
		run: func(ctx context.Context, _ *allEmployeesArgs) json.RawMessage {
			return client.AllEmployees(ctx)
		},
	})
	r.register(&hrTool[employeeInfoArgs]{
		name:        "get_employee_info",
		description: "Get profile data for employees using their exact employee IDs.",
		run: func(ctx context.Context, a *employeeInfoArgs) json.RawMessage {
			return client.EmployeeInfo(ctx, a.EmployeeIDs)
		},
	})

	return r
}
