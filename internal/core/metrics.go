package core

// RunMetrics accumulates the raw counters of one scheduling run. Derived
// figures such as averages, throughput and miss percentages are computed
// from these when the response is generated.
type RunMetrics struct {
	TotalPowerConsumption float64
	DeadlineMisses        int
	MissedProcessIDs      []int
}

// AddPower accounts one process's power draw into the run total.
func (m *RunMetrics) AddPower(power float64) {
	m.TotalPowerConsumption += power
}

// RecordMiss registers one missed deadline.
func (m *RunMetrics) RecordMiss(processID int) {
	m.DeadlineMisses++
	m.MissedProcessIDs = append(m.MissedProcessIDs, processID)
}

// Reset clears the counters for a fresh run.
func (m *RunMetrics) Reset() {
	m.TotalPowerConsumption = 0
	m.DeadlineMisses = 0
	m.MissedProcessIDs = nil
}
