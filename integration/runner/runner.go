package runner

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type ErrorHandlingMode string

const ErrorHandlingExit ErrorHandlingMode = "exit"
const ErrorHandlingContinue ErrorHandlingMode = "continue"

// Runner executes integration tests against a running room-finder API
type Runner struct {
	BaseURL           string
	Client            *http.Client
	Timeout           time.Duration
	Logger            func(format string, args ...interface{})
	ErrorHandlingMode ErrorHandlingMode
}

// NewRunner creates a new test runner
func NewRunner(baseURL string) *Runner {
	return &Runner{
		BaseURL:           strings.TrimSuffix(baseURL, "/"),
		Client:            &http.Client{Timeout: 60 * time.Second},
		Timeout:           30 * time.Second,
		Logger:            func(string, ...interface{}) {},
		ErrorHandlingMode: ErrorHandlingContinue,
	}
}

// LoadTestSuite loads a test suite from a JSON file
func LoadTestSuite(filename string) (TestSuite, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return TestSuite{}, fmt.Errorf("failed to read test file %s: %w", filename, err)
	}

	var suite TestSuite
	if err := json.Unmarshal(content, &suite); err != nil {
		return TestSuite{}, fmt.Errorf("failed to parse JSON in %s: %w", filename, err)
	}

	return suite, nil
}

// LoadTestSuiteWithExpansion loads a test suite and expands it if it's a sequence
func LoadTestSuiteWithExpansion(filename string, casesDir string) ([]TestJob, error) {
	suite, err := LoadTestSuite(filename)
	if err != nil {
		return nil, err
	}

	if !suite.IsSequence() {
		return []TestJob{{
			Name:     suite.Name,
			Suite:    suite,
			CaseFile: filename,
		}}, nil
	}

	var jobs []TestJob
	for _, caseFile := range suite.Cases {
		casePath := filepath.Join(casesDir, caseFile)

		// Recursively load (in case a sequence references another sequence)
		subJobs, err := LoadTestSuiteWithExpansion(casePath, casesDir)
		if err != nil {
			return nil, fmt.Errorf("failed to load case '%s' referenced by sequence '%s': %w", caseFile, suite.Name, err)
		}

		jobs = append(jobs, subJobs...)
	}

	return jobs, nil
}

// RunSuite executes a complete test suite
func (r *Runner) RunSuite(ctx context.Context, suite TestSuite) (TestRunResult, error) {
	start := time.Now()
	result := TestRunResult{
		Job: TestJob{
			Name:  suite.Name,
			Suite: suite,
		},
		Results: make([]TestResult, 0, len(suite.Steps)),
	}

	var failures []string
	for i, step := range suite.Steps {
		r.Logger("    [%d/%d] Running step: %s", i+1, len(suite.Steps), step.Name)
		stepResult := r.runStep(ctx, step)
		result.Results = append(result.Results, stepResult)

		if !stepResult.Success {
			failures = append(failures, fmt.Sprintf("%s: %v", stepResult.StepName, stepResult.Error))
			if r.ErrorHandlingMode == ErrorHandlingExit {
				break
			}
		}
	}

	result.Duration = time.Since(start)
	if len(failures) > 0 {
		result.Error = fmt.Errorf("%d step(s) failed:\n  %s", len(failures), strings.Join(failures, "\n  "))
		return result, result.Error
	}
	return result, nil
}

func (r *Runner) runStep(ctx context.Context, step TestStep) TestResult {
	start := time.Now()
	result := TestResult{StepName: step.Name}
	if result.StepName == "" {
		result.StepName = step.Path
	}

	status, header, body, err := r.do(ctx, step)
	result.Duration = time.Since(start)
	result.Status = status
	if err != nil {
		result.Error = err
		return result
	}

	if err := checkExpectations(step.Expectations, status, header, body); err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	return result
}

func (r *Runner) do(ctx context.Context, step TestStep) (int, http.Header, []byte, error) {
	ctx, cancel := context.WithTimeout(ctx, r.Timeout)
	defer cancel()

	method := step.Method
	if method == "" {
		method = http.MethodGet
	}

	var reqBody io.Reader
	if len(step.Body) > 0 {
		reqBody = bytes.NewReader(step.Body)
	}

	req, err := http.NewRequestWithContext(ctx, method, r.BaseURL+step.Path, reqBody)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to create request: %w", err)
	}
	if reqBody != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := r.Client.Do(req)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close() // Ignore error in defer
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, fmt.Errorf("failed to read response: %w", err)
	}
	return resp.StatusCode, resp.Header, body, nil
}

type routeBody struct {
	Path          []string `json:"path"`
	Distance      float64  `json:"distance"`
	TotalSteps    int      `json:"totalSteps"`
	EstimatedTime string   `json:"estimatedTime"`
	Error         string   `json:"error"`
}

func checkExpectations(exp Expectations, status int, header http.Header, body []byte) error {
	var errs []string

	if exp.Status != nil && *exp.Status != status {
		errs = append(errs, fmt.Sprintf("expected status %d, got %d", *exp.Status, status))
	}

	for name, want := range exp.Headers {
		if got := header.Get(name); got != want {
			errs = append(errs, fmt.Sprintf("expected header %s=%q, got %q", name, want, got))
		}
	}

	text := string(body)
	for _, s := range exp.BodyContains {
		if !strings.Contains(text, s) {
			errs = append(errs, fmt.Sprintf("expected body to contain %q", s))
		}
	}
	for _, s := range exp.BodyNotContains {
		if strings.Contains(text, s) {
			errs = append(errs, fmt.Sprintf("expected body not to contain %q", s))
		}
	}

	if exp.Error != nil || exp.Path != nil || exp.Distance != nil || exp.TotalSteps != nil || exp.EstimatedTime != nil {
		var rb routeBody
		if err := json.Unmarshal(body, &rb); err != nil {
			errs = append(errs, fmt.Sprintf("failed to parse response: %v", err))
		} else {
			if exp.Error != nil && *exp.Error != rb.Error {
				errs = append(errs, fmt.Sprintf("expected error %q, got %q", *exp.Error, rb.Error))
			}
			if exp.Path != nil && strings.Join(exp.Path, ",") != strings.Join(rb.Path, ",") {
				errs = append(errs, fmt.Sprintf("expected path %v, got %v", exp.Path, rb.Path))
			}
			if exp.Distance != nil && math.Abs(*exp.Distance-rb.Distance) > 1e-6 {
				errs = append(errs, fmt.Sprintf("expected distance %v, got %v", *exp.Distance, rb.Distance))
			}
			if exp.TotalSteps != nil && *exp.TotalSteps != rb.TotalSteps {
				errs = append(errs, fmt.Sprintf("expected %d steps, got %d", *exp.TotalSteps, rb.TotalSteps))
			}
			if exp.EstimatedTime != nil && *exp.EstimatedTime != rb.EstimatedTime {
				errs = append(errs, fmt.Sprintf("expected estimated time %q, got %q", *exp.EstimatedTime, rb.EstimatedTime))
			}
		}
	}

	if exp.RoomIDs != nil {
		var rooms []struct {
			ID string `json:"id"`
		}
		if err := json.Unmarshal(body, &rooms); err != nil {
			errs = append(errs, fmt.Sprintf("failed to parse room list: %v", err))
		} else {
			ids := make([]string, 0, len(rooms))
			for _, room := range rooms {
				ids = append(ids, room.ID)
			}
			if strings.Join(exp.RoomIDs, ",") != strings.Join(ids, ",") {
				errs = append(errs, fmt.Sprintf("expected rooms %v, got %v", exp.RoomIDs, ids))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
