package api

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"schedsim/config"
	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

func newTestApp() *fiber.App {
	log := logrus.New()
	log.SetOutput(io.Discard)

	cfg := &config.SchedulerConfig{
		Port:                  9095,
		LogLevel:              "info",
		Cores:                 4,
		RoundRobinTimeQuantum: 2,
		MultilevelFeedbackQueueLevelsTimeQuantum: []int{2, 4, 8},
	}

	app := fiber.New()
	RegisterRoutes(app, NewSchedulerHandlerImpl(cfg, log))
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request to %s failed: %v", path, err)
	}
	return resp
}

func decodeSchedule(t *testing.T, resp *http.Response) responses.ScheduleResponse {
	t.Helper()
	defer resp.Body.Close()

	var out responses.ScheduleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decoding schedule response failed: %v", err)
	}
	return out
}

func TestFirstComeFirstServeEndpoint(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/fcfs",
		`{"jobs": [{"burst_time": 10}, {"burst_time": 5}, {"burst_time": 8}, {"burst_time": 3}]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	response := decodeSchedule(t, resp)
	if response.Policy != string(schedulers.PolicyFCFS) {
		t.Errorf("policy = %q, want %q", response.Policy, schedulers.PolicyFCFS)
	}
	// The configured 4 cores give every job an idle core.
	if got := response.Summary.NumCores; got != 4 {
		t.Errorf("num cores = %d, want the configured 4", got)
	}
	for _, detail := range response.Details {
		if detail.WaitingTime != 0 {
			t.Errorf("P%d: waiting = %d, want 0", detail.ProcessId, detail.WaitingTime)
		}
	}
	if got := response.Summary.Makespan; got != 10 {
		t.Errorf("makespan = %d, want 10", got)
	}
}

func TestRoundRobinEndpointHonorsRequestKnobs(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/rr",
		`{"jobs": [{"burst_time": 5}, {"burst_time": 3}], "cores": 2, "time_quantum": 2}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	response := decodeSchedule(t, resp)
	if got := response.Summary.NumCores; got != 2 {
		t.Errorf("num cores = %d, want the requested 2", got)
	}
	if got := len(response.Timelines[0].Slices); got != 3 {
		t.Errorf("core 0 has %d slices, want 3", got)
	}
	if got := len(response.Timelines[1].Slices); got != 2 {
		t.Errorf("core 1 has %d slices, want 2", got)
	}
}

func TestRoundRobinEndpointFallsBackToConfiguredQuantum(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/rr",
		`{"jobs": [{"burst_time": 5}, {"burst_time": 3}], "cores": 1}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	// The configured quantum of 2 interleaves the two jobs into five slices.
	response := decodeSchedule(t, resp)
	if got := len(response.Timelines[0].Slices); got != 5 {
		t.Errorf("core 0 has %d slices, want 5", got)
	}
}

func TestEarliestDeadlineFirstEndpointReportsMisses(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/edf",
		`{"jobs": [{"burst_time": 5, "deadline": 3}, {"burst_time": 2, "deadline": 10}], "cores": 1}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	response := decodeSchedule(t, resp)
	if got := response.Summary.DeadlineMisses; got != 1 {
		t.Errorf("deadline misses = %d, want 1", got)
	}
	if got := response.Summary.MissedProcessIds; len(got) != 1 || got[0] != 1 {
		t.Errorf("missed ids = %v, want [1]", got)
	}
}

func TestAllEndpointComparesEveryPolicy(t *testing.T) {
	app := newTestApp()

	resp := postJSON(t, app, "/api/v1/all",
		`{"jobs": [{"burst_time": 10, "priority": 2}, {"burst_time": 5, "deadline": 6}, {"burst_time": 8}]}`)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	defer resp.Body.Close()

	var comparison responses.ComparisonResponse
	if err := json.NewDecoder(resp.Body).Decode(&comparison); err != nil {
		t.Fatalf("decoding comparison response failed: %v", err)
	}

	policies := schedulers.AllPolicies()
	if got, want := len(comparison.Runs), len(policies); got != want {
		t.Fatalf("got %d runs, want %d", got, want)
	}
	for i, run := range comparison.Runs {
		if run.Policy != string(policies[i]) {
			t.Errorf("runs[%d].Policy = %q, want %q", i, run.Policy, policies[i])
		}
	}
}

func TestEndpointsRejectBadRequests(t *testing.T) {
	tests := []struct {
		name string
		path string
		body string
	}{
		{"malformed body", "/api/v1/fcfs", `{"jobs": [`},
		{"no jobs", "/api/v1/fcfs", `{"jobs": []}`},
		{"cores out of range", "/api/v1/fcfs", `{"jobs": [{"burst_time": 5}], "cores": 99}`},
		{"zero burst", "/api/v1/sjf", `{"jobs": [{"burst_time": 0}]}`},
		{"negative quantum", "/api/v1/rr", `{"jobs": [{"burst_time": 5}], "time_quantum": -1}`},
		{"bad feedback level", "/api/v1/mlfq", `{"jobs": [{"burst_time": 5}], "level_time_quanta": [2, 0]}`},
		{"bad quantum for comparison", "/api/v1/all", `{"jobs": [{"burst_time": 5}], "time_quantum": -1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := newTestApp()

			resp := postJSON(t, app, tt.path, tt.body)
			defer resp.Body.Close()

			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
			}
			var payload struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
				t.Fatalf("decoding error payload failed: %v", err)
			}
			if payload.Error == "" {
				t.Error("error payload has no message")
			}
		})
	}
}
