package schedulers

import (
	"fmt"

	"schedsim/internal/responses"
)

// RoundRobin places process i on core i mod numCores, then advances the
// machine in synchronous rounds: each round sweeps the cores in ascending
// index order, and every core with queued work runs its front process for
// min(timeQuantum, remaining). Unfinished processes requeue at the back of
// the same core, so work never migrates. A process completes on the slice
// that drains its remaining time; its turnaround is the core's accumulated
// time at that point and its waiting time is turnaround minus burst.
func (s *Scheduler) RoundRobin(timeQuantum int) (responses.ScheduleResponse, error) {
	if err := s.ensureProcesses(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if timeQuantum <= 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: %d", ErrNonPositiveQuantum, timeQuantum)
	}
	s.log.WithField("time_quantum", timeQuantum).Info("running round robin algorithm")
	s.resetRun()

	numCores := s.cores.Size()
	queues := make([][]int, numCores)
	for i := range s.processes {
		coreID := i % numCores
		s.processes[i].CoreID = coreID
		queues[coreID] = append(queues[coreID], i)
	}

	remaining := len(s.processes)
	for remaining > 0 {
		for coreID := 0; coreID < numCores; coreID++ {
			if len(queues[coreID]) == 0 {
				continue
			}
			idx := queues[coreID][0]
			queues[coreID] = queues[coreID][1:]

			p := &s.processes[idx]
			slice := timeQuantum
			if p.RemainingTime < slice {
				slice = p.RemainingTime
			}
			p.RemainingTime -= slice
			s.cores.Commit(coreID, p.ID, slice)

			if p.RemainingTime > 0 {
				queues[coreID] = append(queues[coreID], idx)
				continue
			}

			p.TurnaroundTime = s.cores.Load(coreID)
			p.WaitingTime = p.TurnaroundTime - p.BurstTime
			s.metrics.AddPower(p.PowerConsumption)
			remaining--
		}
	}

	return s.generateResponse(PolicyRoundRobin), nil
}
