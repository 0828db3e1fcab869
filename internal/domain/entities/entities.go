package entities

import "errors"

// Common errors
var (
	ErrAccountNotFound      = errors.New("account not found")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidToken         = errors.New("invalid token")
	ErrTokenEncoding        = errors.New("token encoding failed")
	ErrUnsupportedAlgorithm = errors.New("unsupported signing algorithm")
)

// Informal enums. Records carry them as plain strings and nothing rejects
// values outside these sets.
type TaskStatus string

const (
	TaskStatusPending   TaskStatus = "pending"
	TaskStatusCompleted TaskStatus = "completed"
)

type PriorityLevel string

const (
	PriorityLevelHigh   PriorityLevel = "High"
	PriorityLevelMedium PriorityLevel = "Medium"
	PriorityLevelUnset  PriorityLevel = ""
)

type Frequency string

const (
	FrequencyHourly     Frequency = "hourly"
	FrequencyDaily      Frequency = "daily"
	FrequencyHalfYearly Frequency = "half yearly"
)

// Credentials is a login attempt. It is never stored.
type Credentials struct {
	Email    string
	Password string
}

// Account is the single login the demo accepts. Exactly one of Password or
// PasswordHash is consulted: the hash when present, the plaintext otherwise.
type Account struct {
	Email        string
	Password     string
	PasswordHash string
}

// HasPasswordHash returns true if the account stores a bcrypt hash
func (a *Account) HasPasswordHash() bool {
	return a.PasswordHash != ""
}

// Service is a serviced location within a building
type Service struct {
	ID          int    `json:"id"`
	ServiceName string `json:"serviceName"`
	Building    string `json:"building"`
	Floor       string `json:"floor"`
	Unit        string `json:"unit"`
	CreatedBy   string `json:"createdBy"`
	// CreatedOn is display text, not a parsed timestamp
	CreatedOn string `json:"createdOn"`
}

// Checklist describes a recurring inspection schedule
type Checklist struct {
	ID            int           `json:"id"`
	Name          string        `json:"name"`
	StartDate     string        `json:"startDate"`
	EndDate       string        `json:"endDate"`
	PriorityLevel PriorityLevel `json:"priorityLevel"`
	Frequency     Frequency     `json:"frequency"`
	NoOfGroups    int           `json:"noOfGroups"`
	Associations  string        `json:"associations"`
}

// Task is a unit of work against a service and checklist.
// ServiceName and ChecklistName refer to other records by name only.
type Task struct {
	ID            int        `json:"id"`
	ServiceName   string     `json:"serviceName"`
	ChecklistName string     `json:"checklistName"`
	StartDate     string     `json:"startDate"`
	Status        TaskStatus `json:"status"`
	AssignedTo    string     `json:"assignedTo"`
}

// IsCompleted returns true if the task is completed
func (t *Task) IsCompleted() bool {
	return t.Status == TaskStatusCompleted
}

// HasPriority reports whether a priority level was set on the checklist
func (c *Checklist) HasPriority() bool {
	return c.PriorityLevel != PriorityLevelUnset
}
