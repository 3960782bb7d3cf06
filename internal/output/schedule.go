package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"schedsim/internal/responses"
	"schedsim/internal/schedulers"
)

// RenderTitle prints a section heading.
func RenderTitle(w io.Writer, title string) {
	fmt.Fprintf(w, "=== %s ===\n", title)
}

// PolicyTitle expands a policy name into its display heading.
func PolicyTitle(policy string) string {
	switch schedulers.Policy(policy) {
	case schedulers.PolicyFCFS:
		return "FCFS (First Come First Serve)"
	case schedulers.PolicySJF:
		return "SJF (Shortest Job First)"
	case schedulers.PolicyPriority:
		return "Priority Scheduling"
	case schedulers.PolicyEDF:
		return "EDF (Earliest Deadline First)"
	case schedulers.PolicyRoundRobin:
		return "Round Robin"
	case schedulers.PolicyMLFQ:
		return "MLFQ (Multilevel Feedback Queue)"
	default:
		return policy
	}
}

// FormatDeadline renders a deadline value, where zero means none.
func FormatDeadline(deadline int) string {
	if deadline <= 0 {
		return "none"
	}
	return strconv.Itoa(deadline)
}

// RenderSchedule prints the per-process table of one finished run followed
// by its system summary.
func RenderSchedule(w io.Writer, run responses.ScheduleResponse) {
	rows := make([][]string, 0, len(run.Details))
	for _, p := range run.Details {
		realTime := "no"
		if p.IsRealTime {
			realTime = "yes"
		}
		rows = append(rows, []string{
			fmt.Sprintf("P%d", p.ProcessId),
			strconv.Itoa(p.CoreId),
			strconv.Itoa(p.BurstTime),
			strconv.Itoa(p.Priority),
			FormatDeadline(p.Deadline),
			realTime,
			strconv.Itoa(p.WaitingTime),
			strconv.Itoa(p.TurnaroundTime),
			fmt.Sprintf("%.2f", p.PowerConsumption),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Core", "Burst", "Priority", "Deadline", "Real-Time", "Wait", "Turnaround", "Power"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", run.Summary.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", run.Summary.AverageTurnaroundTime),
		fmt.Sprintf("Total\n%.2f", run.Summary.TotalPowerConsumption),
	})
	table.Render()

	RenderSummary(w, run.Summary)
}

// RenderSummary prints the system-wide figures of one run.
func RenderSummary(w io.Writer, summary responses.SystemSummary) {
	fmt.Fprintf(w, "Cores: %d   Processes: %d   Makespan: %d   Throughput: %.2f proc/unit\n",
		summary.NumCores, summary.TotalProcesses, summary.Makespan, summary.Throughput)
	fmt.Fprintf(w, "Power: %.2f total, %.2f per core\n",
		summary.TotalPowerConsumption, summary.AveragePowerPerCore)
	fmt.Fprintf(w, "Deadline misses: %d of %d (%.1f%%)%s\n",
		summary.DeadlineMisses, summary.TotalProcesses, summary.DeadlineMissPercentage,
		missedProcessList(summary.MissedProcessIds))
}

func missedProcessList(ids []int) string {
	if len(ids) == 0 {
		return ""
	}
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = fmt.Sprintf("P%d", id)
	}
	return " - " + strings.Join(names, ", ")
}
