package schedulers

import (
	"fmt"

	"schedsim/internal/responses"
)

// Policy names a scheduling algorithm.
type Policy string

const (
	PolicyFCFS       Policy = "fcfs"
	PolicySJF        Policy = "sjf"
	PolicyPriority   Policy = "priority"
	PolicyEDF        Policy = "edf"
	PolicyRoundRobin Policy = "round_robin"
	PolicyMLFQ       Policy = "mlfq"
)

// AllPolicies lists every policy in comparison order.
func AllPolicies() []Policy {
	return []Policy{PolicyFCFS, PolicySJF, PolicyPriority, PolicyEDF, PolicyRoundRobin, PolicyMLFQ}
}

// RunOptions carries the knobs only some policies consult: the round robin
// quantum and the feedback queue level quanta.
type RunOptions struct {
	TimeQuantum int
	LevelQuanta []int
}

// Run executes one run of the named policy against the current store.
func (s *Scheduler) Run(policy Policy, opts RunOptions) (responses.ScheduleResponse, error) {
	switch policy {
	case PolicyFCFS:
		return s.FirstComeFirstServe()
	case PolicySJF:
		return s.ShortestJobFirst()
	case PolicyPriority:
		return s.PriorityScheduling()
	case PolicyEDF:
		return s.EarliestDeadlineFirst()
	case PolicyRoundRobin:
		return s.RoundRobin(opts.TimeQuantum)
	case PolicyMLFQ:
		return s.MultilevelFeedbackQueue(opts.LevelQuanta)
	default:
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %q", ErrUnknownPolicy, policy)
	}
}
