package util

import (
	"math"
	"testing"

	"schedsim/internal/responses"
)

func TestCalculateAverages(t *testing.T) {
	details := []responses.ProcessResponse{
		{WaitingTime: 0, TurnaroundTime: 10},
		{WaitingTime: 5, TurnaroundTime: 8},
		{WaitingTime: 7, TurnaroundTime: 12},
	}

	gotWaiting, gotTurnaround := CalculateAverages(details)

	if want := 4.0; math.Abs(gotWaiting-want) > 1e-9 {
		t.Errorf("average waiting = %v, want %v", gotWaiting, want)
	}
	if want := 10.0; math.Abs(gotTurnaround-want) > 1e-9 {
		t.Errorf("average turnaround = %v, want %v", gotTurnaround, want)
	}
}

func TestCalculateAveragesEmpty(t *testing.T) {
	gotWaiting, gotTurnaround := CalculateAverages(nil)

	if gotWaiting != 0 || gotTurnaround != 0 {
		t.Errorf("averages over nothing = %v, %v, want 0, 0", gotWaiting, gotTurnaround)
	}
}
