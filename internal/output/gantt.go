package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"schedsim/internal/responses"
)

// RenderGantt prints one boxed execution timeline per core, with cumulative
// time markers under the slice boundaries.
func RenderGantt(w io.Writer, timelines []responses.CoreTimeline) {
	for _, timeline := range timelines {
		fmt.Fprintf(w, "Core %d (busy %d):\n", timeline.CoreId, timeline.BusyTime)
		if len(timeline.Slices) == 0 {
			fmt.Fprintln(w, "  (idle)")
			continue
		}
		renderCoreChart(w, timeline)
	}
}

func renderCoreChart(w io.Writer, timeline responses.CoreTimeline) {
	slices := timeline.Slices

	// Cell widths scale with the slice duration so the chart stays roughly
	// proportional, but never drop below what the process name needs.
	names := make([]string, len(slices))
	widths := make([]int, len(slices))
	for i, slice := range slices {
		names[i] = fmt.Sprintf("P%d", slice.ProcessId)
		widths[i] = slice.Duration * 2
		if min := len(names[i]) + 2; widths[i] < min {
			widths[i] = min
		}
	}

	var border strings.Builder
	border.WriteString(" ")
	for _, width := range widths {
		border.WriteString(strings.Repeat("-", width))
		border.WriteString(" ")
	}

	var cells strings.Builder
	cells.WriteString("|")
	for i, name := range names {
		padding := widths[i] - len(name)
		left := padding / 2
		cells.WriteString(strings.Repeat(" ", left))
		cells.WriteString(name)
		cells.WriteString(strings.Repeat(" ", padding-left))
		cells.WriteString("|")
	}

	var markers strings.Builder
	markers.WriteString("0")
	elapsed := 0
	for i, slice := range slices {
		elapsed += slice.Duration
		mark := strconv.Itoa(elapsed)
		spaces := widths[i] + 1 - len(mark)
		if spaces < 1 {
			spaces = 1
		}
		markers.WriteString(strings.Repeat(" ", spaces))
		markers.WriteString(mark)
	}

	fmt.Fprintln(w, border.String())
	fmt.Fprintln(w, cells.String())
	fmt.Fprintln(w, border.String())
	fmt.Fprintln(w, markers.String())
}
