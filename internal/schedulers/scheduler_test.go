package schedulers

import (
	"errors"
	"io"
	"math"
	"testing"

	"github.com/sirupsen/logrus"

	"schedsim/internal/requests"
	"schedsim/internal/responses"
)

func newTestScheduler(t *testing.T, numCores int, jobs ...requests.Job) *Scheduler {
	t.Helper()

	log := logrus.New()
	log.SetOutput(io.Discard)

	s, err := NewScheduler(numCores, log)
	if err != nil {
		t.Fatalf("NewScheduler(%d) failed: %v", numCores, err)
	}
	if err := s.AddProcesses(jobs); err != nil {
		t.Fatalf("AddProcesses failed: %v", err)
	}
	return s
}

func burstJobs(bursts ...int) []requests.Job {
	jobs := make([]requests.Job, len(bursts))
	for i, burst := range bursts {
		jobs[i] = requests.Job{BurstTime: burst}
	}
	return jobs
}

func intPtr(v int) *int {
	return &v
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

// assertRunInvariants checks the accounting identities every completed run
// must satisfy: per-process timing, per-core slice sums, and system-wide
// work conservation.
func assertRunInvariants(t *testing.T, s *Scheduler, response responses.ScheduleResponse) {
	t.Helper()

	totalBurst := 0
	for _, p := range s.Processes() {
		totalBurst += p.BurstTime
		if p.RemainingTime != 0 {
			t.Errorf("P%d: RemainingTime = %d, want 0", p.ID, p.RemainingTime)
		}
		if p.TurnaroundTime != p.WaitingTime+p.BurstTime {
			t.Errorf("P%d: turnaround %d != waiting %d + burst %d",
				p.ID, p.TurnaroundTime, p.WaitingTime, p.BurstTime)
		}
		if p.CoreID < 0 || p.CoreID >= response.Summary.NumCores {
			t.Errorf("P%d: core %d out of range [0, %d)", p.ID, p.CoreID, response.Summary.NumCores)
		}
	}

	totalBusy := 0
	for _, timeline := range response.Timelines {
		sum := 0
		for _, slice := range timeline.Slices {
			sum += slice.Duration
		}
		if sum != timeline.BusyTime {
			t.Errorf("core %d: slice sum %d != busy time %d", timeline.CoreId, sum, timeline.BusyTime)
		}
		totalBusy += timeline.BusyTime
	}
	if totalBusy != totalBurst {
		t.Errorf("total busy %d != total burst %d", totalBusy, totalBurst)
	}
}

func TestAddProcessAssignsSequentialIds(t *testing.T) {
	s := newTestScheduler(t, 2)

	for want := 1; want <= 3; want++ {
		id, err := s.AddProcess(requests.Job{BurstTime: want})
		if err != nil {
			t.Fatalf("AddProcess failed: %v", err)
		}
		if id != want {
			t.Errorf("AddProcess returned id %d, want %d", id, want)
		}
	}
	if got := s.NumProcesses(); got != 3 {
		t.Errorf("NumProcesses() = %d, want 3", got)
	}
}

func TestAddProcessRejectsNonPositiveBurst(t *testing.T) {
	s := newTestScheduler(t, 2)

	for _, burst := range []int{0, -5} {
		if _, err := s.AddProcess(requests.Job{BurstTime: burst}); !errors.Is(err, ErrNonPositiveBurst) {
			t.Errorf("AddProcess(burst=%d) error = %v, want ErrNonPositiveBurst", burst, err)
		}
	}
	if got := s.NumProcesses(); got != 0 {
		t.Errorf("NumProcesses() = %d, want 0 after rejected adds", got)
	}
}

func TestClearProcessesRestartsIds(t *testing.T) {
	s := newTestScheduler(t, 2, burstJobs(4, 6)...)

	s.ClearProcesses()

	if got := s.NumProcesses(); got != 0 {
		t.Fatalf("NumProcesses() = %d, want 0", got)
	}
	id, err := s.AddProcess(requests.Job{BurstTime: 3})
	if err != nil {
		t.Fatalf("AddProcess failed: %v", err)
	}
	if id != 1 {
		t.Errorf("first id after clear = %d, want 1", id)
	}
}

func TestNewSchedulerRejectsCoreCountOutOfRange(t *testing.T) {
	log := logrus.New()
	log.SetOutput(io.Discard)

	for _, numCores := range []int{0, -1, 17} {
		if _, err := NewScheduler(numCores, log); !errors.Is(err, ErrInvalidCoreCount) {
			t.Errorf("NewScheduler(%d) error = %v, want ErrInvalidCoreCount", numCores, err)
		}
	}
	for _, numCores := range []int{1, 16} {
		if _, err := NewScheduler(numCores, log); err != nil {
			t.Errorf("NewScheduler(%d) failed: %v", numCores, err)
		}
	}
}

func TestReconfigureClearsProcessesAndTimelines(t *testing.T) {
	s := newTestScheduler(t, 4, burstJobs(10, 5, 8)...)
	if _, err := s.FirstComeFirstServe(); err != nil {
		t.Fatalf("FirstComeFirstServe failed: %v", err)
	}

	if err := s.Reconfigure(2); err != nil {
		t.Fatalf("Reconfigure(2) failed: %v", err)
	}

	if got := s.NumCores(); got != 2 {
		t.Errorf("NumCores() = %d, want 2", got)
	}
	if got := s.NumProcesses(); got != 0 {
		t.Errorf("NumProcesses() = %d, want 0 after reconfigure", got)
	}
	if _, err := s.FirstComeFirstServe(); !errors.Is(err, ErrEmptyProcessSet) {
		t.Errorf("run after reconfigure error = %v, want ErrEmptyProcessSet", err)
	}

	// The rebuilt machine starts from empty timelines.
	if err := s.AddProcesses(burstJobs(3)); err != nil {
		t.Fatalf("AddProcesses failed: %v", err)
	}
	response, err := s.FirstComeFirstServe()
	if err != nil {
		t.Fatalf("FirstComeFirstServe failed: %v", err)
	}
	if len(response.Timelines) != 2 {
		t.Fatalf("got %d timelines, want 2", len(response.Timelines))
	}
	if len(response.Timelines[1].Slices) != 0 {
		t.Errorf("core 1 has %d slices, want 0", len(response.Timelines[1].Slices))
	}
}

func TestReconfigureKeepsStateOnBadCoreCount(t *testing.T) {
	s := newTestScheduler(t, 4, burstJobs(10, 5)...)

	if err := s.Reconfigure(17); !errors.Is(err, ErrInvalidCoreCount) {
		t.Fatalf("Reconfigure(17) error = %v, want ErrInvalidCoreCount", err)
	}

	if got := s.NumCores(); got != 4 {
		t.Errorf("NumCores() = %d, want 4 after rejected reconfigure", got)
	}
	if got := s.NumProcesses(); got != 2 {
		t.Errorf("NumProcesses() = %d, want 2 after rejected reconfigure", got)
	}
}

func TestRunRejectsUnknownPolicy(t *testing.T) {
	s := newTestScheduler(t, 2, burstJobs(4)...)

	if _, err := s.Run(Policy("lottery"), RunOptions{}); !errors.Is(err, ErrUnknownPolicy) {
		t.Errorf("Run(lottery) error = %v, want ErrUnknownPolicy", err)
	}
}

func TestRunRejectsEmptyProcessSet(t *testing.T) {
	opts := RunOptions{TimeQuantum: 2, LevelQuanta: []int{2, 4}}

	for _, policy := range AllPolicies() {
		t.Run(string(policy), func(t *testing.T) {
			s := newTestScheduler(t, 2)
			if _, err := s.Run(policy, opts); !errors.Is(err, ErrEmptyProcessSet) {
				t.Errorf("Run(%s) error = %v, want ErrEmptyProcessSet", policy, err)
			}
		})
	}
}
