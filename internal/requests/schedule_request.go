package requests

import "schedsim/internal/core"

// Job is one submitted process. Priority is a pointer so an omitted field
// can fall back to the default without colliding with a real zero.
type Job struct {
	BurstTime  int  `json:"burst_time"`
	Priority   *int `json:"priority,omitempty"`
	Deadline   int  `json:"deadline,omitempty"`
	IsRealTime bool `json:"is_real_time,omitempty"`
}

// PriorityOrDefault resolves the submitted priority, falling back to
// core.DefaultPriority when the field was omitted.
func (j Job) PriorityOrDefault() int {
	if j.Priority == nil {
		return core.DefaultPriority
	}
	return *j.Priority
}

// ScheduleRequest is the body of every scheduling endpoint. Cores and the
// quanta fall back to the server configuration when left at zero.
type ScheduleRequest struct {
	Jobs            []Job `json:"jobs"`
	Cores           int   `json:"cores,omitempty"`
	TimeQuantum     int   `json:"time_quantum,omitempty"`
	LevelTimeQuanta []int `json:"level_time_quanta,omitempty"`
}
