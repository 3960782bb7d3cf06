package core

// TimelineSlice is one contiguous stretch of a core's schedule: which
// process ran and for how long. Consecutive slices of the same process are
// kept separate so preemptions stay visible.
type TimelineSlice struct {
	ProcessId int `json:"process_id"`
	Duration  int `json:"duration"`
}

// CoreSet tracks the cumulative busy time and the execution timeline of
// every simulated core. A slice is committed to the load and the timeline in
// one step, so the timeline durations of a core always sum to its load.
type CoreSet struct {
	loads     []int
	timelines [][]TimelineSlice
}

func NewCoreSet(numCores int) *CoreSet {
	return &CoreSet{
		loads:     make([]int, numCores),
		timelines: make([][]TimelineSlice, numCores),
	}
}

// Size returns the number of cores.
func (c *CoreSet) Size() int {
	return len(c.loads)
}

// LeastLoaded returns the core with the smallest cumulative load, preferring
// the lowest index on ties.
func (c *CoreSet) LeastLoaded() int {
	best := 0
	for i := 1; i < len(c.loads); i++ {
		if c.loads[i] < c.loads[best] {
			best = i
		}
	}
	return best
}

// Commit appends an execution slice to a core's timeline and grows its load.
func (c *CoreSet) Commit(coreID, processID, duration int) {
	c.loads[coreID] += duration
	c.timelines[coreID] = append(c.timelines[coreID], TimelineSlice{
		ProcessId: processID,
		Duration:  duration,
	})
}

// Load returns the cumulative busy time of one core.
func (c *CoreSet) Load(coreID int) int {
	return c.loads[coreID]
}

// Timeline returns the slices committed to one core, in execution order.
func (c *CoreSet) Timeline(coreID int) []TimelineSlice {
	return c.timelines[coreID]
}

// Makespan returns the largest cumulative load across all cores.
func (c *CoreSet) Makespan() int {
	max := 0
	for _, load := range c.loads {
		if load > max {
			max = load
		}
	}
	return max
}

// TotalBusy returns the summed load of all cores.
func (c *CoreSet) TotalBusy() int {
	total := 0
	for _, load := range c.loads {
		total += load
	}
	return total
}

// Reset clears every load and timeline in place.
func (c *CoreSet) Reset() {
	for i := range c.loads {
		c.loads[i] = 0
		c.timelines[i] = nil
	}
}
