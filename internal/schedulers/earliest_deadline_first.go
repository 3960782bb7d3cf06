package schedulers

import (
	"github.com/sirupsen/logrus"

	"schedsim/internal/core"
	"schedsim/internal/responses"
)

// EarliestDeadlineFirst assigns processes in ascending deadline order.
// Deadline zero means no deadline, so those processes sort ahead of every
// deadlined one and are exempt from miss accounting. A deadlined process
// misses when its turnaround time ends up past the deadline.
func (s *Scheduler) EarliestDeadlineFirst() (responses.ScheduleResponse, error) {
	if err := s.ensureProcesses(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	s.log.WithField("processes", len(s.processes)).Info("running edf algorithm")
	s.resetRun()

	for _, idx := range s.orderBy(func(a, b core.Process) bool {
		return a.Deadline < b.Deadline
	}) {
		s.assign(idx)

		p := s.processes[idx]
		if p.MissedDeadline() {
			s.metrics.RecordMiss(p.ID)
			s.log.WithFields(logrus.Fields{
				"pid":        p.ID,
				"deadline":   p.Deadline,
				"turnaround": p.TurnaroundTime,
			}).Warn("deadline miss")
		}
	}

	return s.generateResponse(PolicyEDF), nil
}
