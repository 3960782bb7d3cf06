package schedulers

import (
	"schedsim/internal/core"
	"schedsim/internal/responses"
	"schedsim/internal/util"
)

// generateResponse derives the full response payload from the state a
// finished run left behind.
func (s *Scheduler) generateResponse(policy Policy) responses.ScheduleResponse {
	processDetails := make([]responses.ProcessResponse, 0, len(s.processes))
	for i := range s.processes {
		processDetails = append(processDetails, generateProcessDetails(s.processes[i]))
	}

	numCores := s.cores.Size()
	timelines := make([]responses.CoreTimeline, 0, numCores)
	for coreID := 0; coreID < numCores; coreID++ {
		slices := s.cores.Timeline(coreID)
		timeline := responses.CoreTimeline{
			CoreId:   coreID,
			Slices:   make([]core.TimelineSlice, len(slices)),
			BusyTime: s.cores.Load(coreID),
		}
		copy(timeline.Slices, slices)
		timelines = append(timelines, timeline)
	}

	averageWaitingTime, averageTurnaroundTime := util.CalculateAverages(processDetails)

	processCount := len(s.processes)
	makespan := s.cores.Makespan()
	var throughput float64
	if makespan > 0 {
		throughput = float64(processCount) / float64(makespan)
	}
	var missPercentage float64
	if processCount > 0 {
		missPercentage = float64(s.metrics.DeadlineMisses) / float64(processCount) * 100
	}

	summary := responses.SystemSummary{
		NumCores:               numCores,
		TotalProcesses:         processCount,
		Makespan:               makespan,
		Throughput:             throughput,
		AverageWaitingTime:     averageWaitingTime,
		AverageTurnaroundTime:  averageTurnaroundTime,
		TotalPowerConsumption:  s.metrics.TotalPowerConsumption,
		AveragePowerPerCore:    s.metrics.TotalPowerConsumption / float64(numCores),
		DeadlineMisses:         s.metrics.DeadlineMisses,
		DeadlineMissPercentage: missPercentage,
		MissedProcessIds:       append([]int{}, s.metrics.MissedProcessIDs...),
	}

	return responses.ScheduleResponse{
		Policy:    string(policy),
		Summary:   summary,
		Details:   processDetails,
		Timelines: timelines,
	}
}

// generateProcessDetails flattens one process into its response row.
func generateProcessDetails(p core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:        p.ID,
		CoreId:           p.CoreID,
		BurstTime:        p.BurstTime,
		Priority:         p.Priority,
		Deadline:         p.Deadline,
		IsRealTime:       p.IsRealTime,
		WaitingTime:      p.WaitingTime,
		TurnaroundTime:   p.TurnaroundTime,
		PowerConsumption: p.PowerConsumption,
	}
}
