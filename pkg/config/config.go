// Package config loads the Darwinbox credentials once at startup. Every
// client operation receives the resulting immutable struct by reference.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// LeaveKeys holds the per-operation API keys for the leave endpoints.
type LeaveKeys struct {
	Report     string
	Balance    string
	Action     string
	Import     string
	Holiday    string
	Encashment string
}

// AttendanceKeys holds the per-operation API keys for the attendance endpoints.
type AttendanceKeys struct {
	DailyStatus string
	DailyRoster string
	Punches     string
	Monthly     string
	Timesheet   string
	Overtime    string
}

// Config is the full Darwinbox credential set. Basic-auth username/password
// are shared across every call; API keys are per operation and travel in the
// request body.
type Config struct {
	Domain   string
	Username string
	Password string

	Leave      LeaveKeys
	Attendance AttendanceKeys

	EmployeeAPIKey     string
	EmployeeDatasetKey string
}

// FromEnv builds a Config from the environment. Every variable is required;
// the error lists all missing names at once so a broken deployment is fixed
// in one pass.
func FromEnv() (*Config, error) {
	var missing []string
	get := func(name string) string {
		value := strings.TrimSpace(os.Getenv(name))
		if value == "" {
			missing = append(missing, name)
		}
		return value
	}

	cfg := &Config{
		Domain:   get("DARWINBOX_DOMAIN"),
		Username: get("DARWINBOX_USERNAME"),
		Password: get("DARWINBOX_PASSWORD"),
		Leave: LeaveKeys{
			Report:     get("LEAVE_REPORT_KEY"),
			Balance:    get("LEAVE_BALANCE_KEY"),
			Action:     get("LEAVE_ACTION_KEY"),
			Import:     get("LEAVE_IMPORT_KEY"),
			Holiday:    get("LEAVE_HOLIDAY_KEY"),
			Encashment: get("LEAVE_ENCASHMENT_KEY"),
		},
		Attendance: AttendanceKeys{
			DailyStatus: get("ATTD_DAILY_STATUS_KEY"),
			DailyRoster: get("ATTENDANCE_DAILY_ROSTER_KEY"),
			Punches:     get("ATTENDANCE_PUNCHES_KEY"),
			Monthly:     get("ATTENDANCE_MONTHLY_KEY"),
			Timesheet:   get("ATTENDANCE_TIMESHEET_DATEWISE_KEY"),
			Overtime:    get("ATTENDANCE_OVERTIME_DATEWISE_KEY"),
		},
		EmployeeAPIKey:     get("EMP_API_KEY"),
		EmployeeDatasetKey: get("EMP_DATASET_KEY"),
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	cfg.Domain = strings.TrimRight(cfg.Domain, "/")
	return cfg, nil
}

// LogValue keeps secrets out of the logs when a Config is logged.
func (c *Config) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("domain", c.Domain),
		slog.String("username", c.Username),
		slog.String("password", "********"),
		slog.String("api_keys", "********"),
	)
}
