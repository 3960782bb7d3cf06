package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/responses"
)

// PriorityScheduling assigns processes in ascending priority value order, so
// priority 0 is the most urgent. Equal priorities keep their insertion order.
func (s *Scheduler) PriorityScheduling() (responses.ScheduleResponse, error) {
	if err := s.ensureProcesses(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	s.log.WithField("processes", len(s.processes)).Info("running priority algorithm")
	s.resetRun()

	for _, idx := range s.orderBy(func(a, b core.Process) bool {
		return a.Priority < b.Priority
	}) {
		s.assign(idx)
	}

	return s.generateResponse(PolicyPriority), nil
}
