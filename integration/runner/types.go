package runner

import (
	"encoding/json"
	"time"
)

// TestSuite defines one integration scenario against the API.
// Can either be a regular test with Steps, or a suite that references other Cases
type TestSuite struct {
	Name  string     `json:"name"`
	Steps []TestStep `json:"steps,omitempty"` // Used for regular tests
	Cases []string   `json:"cases,omitempty"` // Used for suite tests (list of case files)
}

// IsSequence returns true if this is a suite that sequences other cases
func (ts *TestSuite) IsSequence() bool {
	return len(ts.Cases) > 0
}

// TestStep is one HTTP request and its expected outcome
type TestStep struct {
	Name         string          `json:"name,omitempty"`
	Method       string          `json:"method,omitempty"` // defaults to GET
	Path         string          `json:"path"`
	Body         json.RawMessage `json:"body,omitempty"`
	Expectations Expectations    `json:"expect"`
}

// Expectations defines what to check after a test step executes
type Expectations struct {
	Status  *int              `json:"status,omitempty"`
	Headers map[string]string `json:"headers,omitempty"`
	Error   *string           `json:"error,omitempty"` // error field of an error response

	// Route responses
	Path          []string `json:"path,omitempty"`
	Distance      *float64 `json:"distance,omitempty"` // compared within 1e-6
	TotalSteps    *int     `json:"total_steps,omitempty"`
	EstimatedTime *string  `json:"estimated_time,omitempty"`

	// Room list responses, compared in order
	RoomIDs []string `json:"room_ids,omitempty"`

	BodyContains    []string `json:"body_contains,omitempty"`
	BodyNotContains []string `json:"body_not_contains,omitempty"`
}

// TestResult contains the outcome of running a test step
type TestResult struct {
	StepName string
	Success  bool
	Error    error
	Duration time.Duration
	Status   int
}

// TestJob represents a test suite to be executed
type TestJob struct {
	Name     string
	Suite    TestSuite
	CaseFile string
}

// TestRunResult contains the results of running an entire test suite
type TestRunResult struct {
	Job      TestJob
	Results  []TestResult
	Error    error
	Duration time.Duration
}
