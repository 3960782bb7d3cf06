package schedulers

import "schedsim/internal/responses"

// FirstComeFirstServe assigns processes in insertion order, each one whole
// to the core with the least accumulated load at that moment.
func (s *Scheduler) FirstComeFirstServe() (responses.ScheduleResponse, error) {
	if err := s.ensureProcesses(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	s.log.WithField("processes", len(s.processes)).Info("running fcfs algorithm")
	s.resetRun()

	for i := range s.processes {
		s.assign(i)
	}

	return s.generateResponse(PolicyFCFS), nil
}
