package worksheet

import (
	"time"
)

// Entry statuses
type EntryStatus string

const (
	StatusCompleted  EntryStatus = "Completed"
	StatusInProgress EntryStatus = "In Progress"
	StatusPending    EntryStatus = "Pending"
)

var EntryStatusValues = []string{
	string(StatusCompleted),
	string(StatusInProgress),
	string(StatusPending),
}

// Break reasons
var BreakReasonValues = []string{
	"Lunch",
	"Tea Break",
	"Personal",
	"Meeting",
	"Other",
}

// Entry is one unit of logged work within a day. Duration is derived
// from From/To on every recompute and never trusted from input.
type Entry struct {
	From     string      `json:"from"`
	To       string      `json:"to"`
	Task     string      `json:"task,omitempty"`
	Project  string      `json:"project,omitempty"`
	Status   EntryStatus `json:"status"`
	Duration int         `json:"duration"`
}

// Break is one pause within a day.
type Break struct {
	Start    string `json:"start"`
	End      string `json:"end"`
	Reason   string `json:"reason"`
	Duration int    `json:"duration"`
}

// TaskSummary holds entry counts by status.
type TaskSummary struct {
	Completed  int `json:"completed"`
	InProgress int `json:"in_progress"`
	Pending    int `json:"pending"`
	Total      int `json:"total"`
}

// Worksheet is the aggregate root for one employee-day. At most one
// record exists per (EmployeeID, Date). All derived fields are a pure
// function of Entries and Breaks at the moment of the last save.
type Worksheet struct {
	ID         string
	EmployeeID string
	Date       string // YYYY-MM-DD, opaque calendar key
	Entries    []Entry
	Breaks     []Break

	// Derived
	TotalWorkHours     float64
	TotalBreakHours    float64
	EffectiveWorkHours float64
	ProductivityScore  int
	TaskSummary        TaskSummary

	// Stamped at check-in/check-out, stored as opaque strings
	CheckInTime      *string
	CheckOutTime     *string
	AttendanceStatus *string

	IsSubmitted bool
	SubmittedAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}
