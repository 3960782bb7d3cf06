package requests

// ExampleJobs returns the canned demo workload: four CPU bound jobs with
// well known burst times, so every policy's output can be checked by hand.
func ExampleJobs() []Job {
	return []Job{
		{BurstTime: 10},
		{BurstTime: 5},
		{BurstTime: 8},
		{BurstTime: 3},
	}
}
