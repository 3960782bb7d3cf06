package responses

import "schedsim/internal/core"

type ProcessResponse struct {
	ProcessId        int     `json:"process_id"`
	CoreId           int     `json:"core_id"`
	BurstTime        int     `json:"burst_time"`
	Priority         int     `json:"priority"`
	Deadline         int     `json:"deadline"`
	IsRealTime       bool    `json:"is_real_time"`
	WaitingTime      int     `json:"waiting_time"`
	TurnaroundTime   int     `json:"turnaround_time"`
	PowerConsumption float64 `json:"power_consumption"`
}

type CoreTimeline struct {
	CoreId   int                  `json:"core_id"`
	Slices   []core.TimelineSlice `json:"slices"`
	BusyTime int                  `json:"busy_time"`
}

type SystemSummary struct {
	NumCores               int     `json:"num_cores"`
	TotalProcesses         int     `json:"total_processes"`
	Makespan               int     `json:"makespan"`
	Throughput             float64 `json:"throughput"`
	AverageWaitingTime     float64 `json:"average_waiting_time"`
	AverageTurnaroundTime  float64 `json:"average_turnaround_time"`
	TotalPowerConsumption  float64 `json:"total_power_consumption"`
	AveragePowerPerCore    float64 `json:"average_power_per_core"`
	DeadlineMisses         int     `json:"deadline_misses"`
	DeadlineMissPercentage float64 `json:"deadline_miss_percentage"`
	MissedProcessIds       []int   `json:"missed_process_ids"`
}

type ScheduleResponse struct {
	Policy    string            `json:"policy"`
	Summary   SystemSummary     `json:"summary"`
	Details   []ProcessResponse `json:"details"`
	Timelines []CoreTimeline    `json:"timelines"`
}

type ComparisonResponse struct {
	Runs []ScheduleResponse `json:"runs"`
}
