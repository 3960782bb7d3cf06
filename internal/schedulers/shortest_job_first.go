package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/responses"
)

// ShortestJobFirst assigns processes in ascending burst time order. Equal
// bursts keep their insertion order.
func (s *Scheduler) ShortestJobFirst() (responses.ScheduleResponse, error) {
	if err := s.ensureProcesses(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	s.log.WithField("processes", len(s.processes)).Info("running sjf algorithm")
	s.resetRun()

	for _, idx := range s.orderBy(func(a, b core.Process) bool {
		return a.BurstTime < b.BurstTime
	}) {
		s.assign(idx)
	}

	return s.generateResponse(PolicySJF), nil
}
