package core

const (
	// MinCores and MaxCores bound the simulated machine size.
	MinCores = 1
	MaxCores = 16

	// DefaultPriority is assumed for jobs submitted without one.
	DefaultPriority = 128

	MinPriority = 0
	MaxPriority = 255

	// PowerCoefficient converts one unit of burst time into energy units.
	PowerCoefficient = 0.1

	// CoreUnassigned marks a process no run has placed yet.
	CoreUnassigned = -1
)

// Process is one schedulable unit of work. The identity fields are fixed at
// creation; the run fields are rewritten by every scheduling run.
type Process struct {
	ID               int
	BurstTime        int
	Priority         int
	Deadline         int
	IsRealTime       bool
	PowerConsumption float64

	WaitingTime    int
	TurnaroundTime int
	RemainingTime  int
	CoreID         int
}

// NewProcess builds a process ready for its first run. Priorities are
// clamped into [MinPriority, MaxPriority] and negative deadlines collapse to
// zero, meaning no deadline.
func NewProcess(id, burstTime, priority, deadline int, isRealTime bool) Process {
	if priority < MinPriority {
		priority = MinPriority
	}
	if priority > MaxPriority {
		priority = MaxPriority
	}
	if deadline < 0 {
		deadline = 0
	}
	return Process{
		ID:               id,
		BurstTime:        burstTime,
		Priority:         priority,
		Deadline:         deadline,
		IsRealTime:       isRealTime,
		PowerConsumption: PowerCoefficient * float64(burstTime),
		RemainingTime:    burstTime,
		CoreID:           CoreUnassigned,
	}
}

// Reset restores the run fields so the process can be scheduled again.
func (p *Process) Reset() {
	p.WaitingTime = 0
	p.TurnaroundTime = 0
	p.RemainingTime = p.BurstTime
	p.CoreID = CoreUnassigned
}

// HasDeadline reports whether the process carries a deadline. Zero means none.
func (p *Process) HasDeadline() bool {
	return p.Deadline > 0
}

// MissedDeadline reports whether the last run completed past the deadline.
// Processes without a deadline never miss.
func (p *Process) MissedDeadline() bool {
	return p.HasDeadline() && p.TurnaroundTime > p.Deadline
}
