package schedulers

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"schedsim/internal/responses"
)

// CompareAll runs every policy over a snapshot of the current store and
// returns the responses in AllPolicies order. Each policy runs on its own
// clone, so the store keeps its insertion order and a comparison can be
// followed by further runs.
func (s *Scheduler) CompareAll(timeQuantum int, levelQuanta []int) (responses.ComparisonResponse, error) {
	if err := s.ensureProcesses(); err != nil {
		return responses.ComparisonResponse{}, err
	}
	if timeQuantum <= 0 {
		return responses.ComparisonResponse{}, fmt.Errorf("%w: %d", ErrNonPositiveQuantum, timeQuantum)
	}
	if len(levelQuanta) == 0 {
		return responses.ComparisonResponse{}, fmt.Errorf("%w: no queue levels", ErrNonPositiveQuantum)
	}
	for _, quantum := range levelQuanta {
		if quantum <= 0 {
			return responses.ComparisonResponse{}, fmt.Errorf("%w: %d", ErrNonPositiveQuantum, quantum)
		}
	}

	policies := AllPolicies()
	runs := make([]responses.ScheduleResponse, len(policies))

	var group errgroup.Group
	for i, policy := range policies {
		i, policy := i, policy
		clone := s.clone()
		group.Go(func() error {
			response, err := clone.Run(policy, RunOptions{TimeQuantum: timeQuantum, LevelQuanta: levelQuanta})
			if err != nil {
				return err
			}
			runs[i] = response
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return responses.ComparisonResponse{}, err
	}

	return responses.ComparisonResponse{Runs: runs}, nil
}
