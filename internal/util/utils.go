package util

import "schedsim/internal/responses"

// CalculateAverages reduces the per-process timing figures to their means.
func CalculateAverages(processDetails []responses.ProcessResponse) (averageWaitingTime, averageTurnaroundTime float64) {
	if len(processDetails) == 0 {
		return 0, 0
	}

	var waitingTimeSum float64
	var turnaroundTimeSum float64

	for _, process := range processDetails {
		waitingTimeSum += float64(process.WaitingTime)
		turnaroundTimeSum += float64(process.TurnaroundTime)
	}

	processCount := float64(len(processDetails))

	averageWaitingTime = waitingTimeSum / processCount
	averageTurnaroundTime = turnaroundTimeSum / processCount
	return
}
