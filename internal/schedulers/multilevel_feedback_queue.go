package schedulers

import (
	"fmt"

	"schedsim/internal/responses"
)

// MultilevelFeedbackQueue places process i on core i mod numCores and gives
// every core one feedback queue per configured level quantum. Processes
// start in the top queue; each core repeatedly serves the lowest non-empty
// level, runs the front process for min(levelQuantum, remaining), and
// demotes it one level when work remains. The bottom level requeues to
// itself, degrading to round robin. Work never migrates between cores, and
// completion accounting matches round robin.
func (s *Scheduler) MultilevelFeedbackQueue(levelQuanta []int) (responses.ScheduleResponse, error) {
	if err := s.ensureProcesses(); err != nil {
		return responses.ScheduleResponse{}, err
	}
	if len(levelQuanta) == 0 {
		return responses.ScheduleResponse{}, fmt.Errorf("%w: no queue levels", ErrNonPositiveQuantum)
	}
	for _, quantum := range levelQuanta {
		if quantum <= 0 {
			return responses.ScheduleResponse{}, fmt.Errorf("%w: %d", ErrNonPositiveQuantum, quantum)
		}
	}
	s.log.WithField("levels_time_quantum", levelQuanta).Info("running mlfq algorithm")
	s.resetRun()

	numCores := s.cores.Size()
	levels := len(levelQuanta)
	queues := make([][][]int, numCores)
	for coreID := range queues {
		queues[coreID] = make([][]int, levels)
	}
	for i := range s.processes {
		coreID := i % numCores
		s.processes[i].CoreID = coreID
		queues[coreID][0] = append(queues[coreID][0], i)
	}

	for coreID := 0; coreID < numCores; coreID++ {
		for {
			level := -1
			for l := 0; l < levels; l++ {
				if len(queues[coreID][l]) > 0 {
					level = l
					break
				}
			}
			if level == -1 {
				break
			}

			idx := queues[coreID][level][0]
			queues[coreID][level] = queues[coreID][level][1:]

			p := &s.processes[idx]
			slice := levelQuanta[level]
			if p.RemainingTime < slice {
				slice = p.RemainingTime
			}
			p.RemainingTime -= slice
			s.cores.Commit(coreID, p.ID, slice)

			if p.RemainingTime > 0 {
				next := level + 1
				if next >= levels {
					next = levels - 1
				}
				queues[coreID][next] = append(queues[coreID][next], idx)
				continue
			}

			p.TurnaroundTime = s.cores.Load(coreID)
			p.WaitingTime = p.TurnaroundTime - p.BurstTime
			s.metrics.AddPower(p.PowerConsumption)
		}
	}

	return s.generateResponse(PolicyMLFQ), nil
}
