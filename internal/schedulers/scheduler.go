package schedulers

import (
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"schedsim/internal/core"
	"schedsim/internal/requests"
)

var (
	// ErrInvalidCoreCount rejects machine sizes outside [core.MinCores, core.MaxCores].
	ErrInvalidCoreCount = errors.New("invalid core count")
	// ErrEmptyProcessSet rejects any run over an empty process store.
	ErrEmptyProcessSet = errors.New("empty process set")
	// ErrNonPositiveQuantum rejects time quanta that are zero or negative.
	ErrNonPositiveQuantum = errors.New("non-positive time quantum")
	// ErrNonPositiveBurst rejects jobs whose burst time is zero or negative.
	ErrNonPositiveBurst = errors.New("non-positive burst time")
	// ErrUnknownPolicy rejects policy names no algorithm answers to.
	ErrUnknownPolicy = errors.New("unknown policy")
)

// Scheduler owns the process store and the simulated machine. One instance
// serves a single API request or a whole interactive session; runs can be
// repeated and the machine reconfigured between them.
type Scheduler struct {
	log       *logrus.Logger
	processes []core.Process
	cores     *core.CoreSet
	metrics   core.RunMetrics
	nextID    int
}

// NewScheduler builds a scheduler over numCores empty cores.
func NewScheduler(numCores int, log *logrus.Logger) (*Scheduler, error) {
	if numCores < core.MinCores || numCores > core.MaxCores {
		return nil, fmt.Errorf("%w: %d, want %d..%d", ErrInvalidCoreCount, numCores, core.MinCores, core.MaxCores)
	}
	if log == nil {
		log = logrus.New()
	}
	return &Scheduler{
		log:    log,
		cores:  core.NewCoreSet(numCores),
		nextID: 1,
	}, nil
}

// AddProcess appends one job to the store and returns its assigned id.
// Ids are handed out sequentially starting from 1.
func (s *Scheduler) AddProcess(job requests.Job) (int, error) {
	if job.BurstTime <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrNonPositiveBurst, job.BurstTime)
	}
	id := s.nextID
	s.nextID++
	s.processes = append(s.processes, core.NewProcess(id, job.BurstTime, job.PriorityOrDefault(), job.Deadline, job.IsRealTime))
	return id, nil
}

// AddProcesses appends a batch of jobs, stopping at the first invalid one.
func (s *Scheduler) AddProcesses(jobs []requests.Job) error {
	for _, job := range jobs {
		if _, err := s.AddProcess(job); err != nil {
			return err
		}
	}
	return nil
}

// ClearProcesses empties the store and restarts id assignment from 1.
func (s *Scheduler) ClearProcesses() {
	s.processes = nil
	s.nextID = 1
}

// Reconfigure swaps the machine for one with numCores empty cores and
// clears the process store, since results computed against the old machine
// would be meaningless. The current state is kept when the new size is out
// of range.
func (s *Scheduler) Reconfigure(numCores int) error {
	if numCores < core.MinCores || numCores > core.MaxCores {
		return fmt.Errorf("%w: %d, want %d..%d", ErrInvalidCoreCount, numCores, core.MinCores, core.MaxCores)
	}
	s.ClearProcesses()
	s.cores = core.NewCoreSet(numCores)
	s.metrics.Reset()
	return nil
}

// NumCores returns the size of the simulated machine.
func (s *Scheduler) NumCores() int {
	return s.cores.Size()
}

// NumProcesses returns the number of stored processes.
func (s *Scheduler) NumProcesses() int {
	return len(s.processes)
}

// Processes returns a copy of the store in insertion order.
func (s *Scheduler) Processes() []core.Process {
	out := make([]core.Process, len(s.processes))
	copy(out, s.processes)
	return out
}

// ensureProcesses guards every run entry point.
func (s *Scheduler) ensureProcesses() error {
	if len(s.processes) == 0 {
		return ErrEmptyProcessSet
	}
	return nil
}

// resetRun restores every process, core and counter to the pre-run state so
// consecutive runs start from identical conditions.
func (s *Scheduler) resetRun() {
	for i := range s.processes {
		s.processes[i].Reset()
	}
	s.cores.Reset()
	s.metrics.Reset()
}

// assign places one process, whole, on the least loaded core. Waiting time
// is the load the core had accumulated before this process, so the first
// process on any core waits zero.
func (s *Scheduler) assign(idx int) {
	p := &s.processes[idx]
	coreID := s.cores.LeastLoaded()

	p.CoreID = coreID
	p.WaitingTime = s.cores.Load(coreID)
	p.TurnaroundTime = p.WaitingTime + p.BurstTime
	p.RemainingTime = 0

	s.cores.Commit(coreID, p.ID, p.BurstTime)
	s.metrics.AddPower(p.PowerConsumption)
}

// orderBy returns the store indices permuted by a stable less comparison,
// leaving the store itself in insertion order.
func (s *Scheduler) orderBy(less func(a, b core.Process) bool) []int {
	order := make([]int, len(s.processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return less(s.processes[order[i]], s.processes[order[j]])
	})
	return order
}

// clone deep-copies the scheduler so comparison runs leave the original
// untouched.
func (s *Scheduler) clone() *Scheduler {
	dup := &Scheduler{
		log:    s.log,
		cores:  core.NewCoreSet(s.cores.Size()),
		nextID: s.nextID,
	}
	dup.processes = make([]core.Process, len(s.processes))
	copy(dup.processes, s.processes)
	return dup
}
