package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/responses"
)

// RenderComparison prints every run of a policy comparison in full, then a
// closing table that puts their headline figures side by side.
func RenderComparison(w io.Writer, comparison responses.ComparisonResponse) {
	for _, run := range comparison.Runs {
		RenderTitle(w, PolicyTitle(run.Policy))
		RenderGantt(w, run.Timelines)
		RenderSchedule(w, run)
		fmt.Fprintln(w)
	}

	RenderTitle(w, "Algorithm Comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Wait", "Avg Turnaround", "Throughput", "Power", "Misses"})
	for _, run := range comparison.Runs {
		table.Append([]string{
			PolicyTitle(run.Policy),
			fmt.Sprintf("%.2f", run.Summary.AverageWaitingTime),
			fmt.Sprintf("%.2f", run.Summary.AverageTurnaroundTime),
			fmt.Sprintf("%.2f", run.Summary.Throughput),
			fmt.Sprintf("%.2f", run.Summary.TotalPowerConsumption),
			strconv.Itoa(run.Summary.DeadlineMisses),
		})
	}
	table.Render()
}
