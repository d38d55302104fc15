package report

import (
	"fmt"
	"io"
	"strings"
)

// writeTable renders a GitHub-flavoured markdown table with padded columns.
func writeTable(w io.Writer, headers []string, rows [][]string) {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], len(cell))
		}
	}

	line := func(cells []string) {
		var sb strings.Builder
		sb.WriteString("|")
		for i, c := range cells {
			sb.WriteString(" ")
			sb.WriteString(c)
			sb.WriteString(strings.Repeat(" ", widths[i]-len(c)))
			sb.WriteString(" |")
		}
		fmt.Fprintln(w, sb.String())
	}

	line(headers)
	sep := make([]string, len(headers))
	for i := range sep {
		sep[i] = strings.Repeat("-", widths[i])
	}
	line(sep)
	for _, row := range rows {
		line(row)
	}
}

// PrintSummary displays the aggregated results at the end of the simulation.
func PrintSummary(w io.Writer, s *Summary) {
	fmt.Fprintln(w, "=== Simulation Results ===")
	fmt.Fprintf(w, "Patients Completed: %d of %d\n", s.Completed, s.Spawned)
	if s.Completed > 0 {
		fmt.Fprintf(w, "Average Wait Time: %d min\n", int(s.AvgWait))
		fmt.Fprintf(w, "Median Wait Time:  %d min\n", int(s.MedianWait))
		fmt.Fprintf(w, "P90 Wait Time:     %d min\n", int(s.P90Wait))
		fmt.Fprintf(w, "Max Wait Time:     %d min\n", int(s.MaxWait))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Average Queue Lengths ---")
	writeTable(w, []string{"Queue Type", "Avg Length", "Max Length"}, [][]string{
		{"Fast-Track Queue", fmt.Sprintf("%.2f", s.AvgQueueFast), fmt.Sprintf("%d", s.MaxQueueFast)},
		{"Main ED Queue", fmt.Sprintf("%.2f", s.AvgQueueMain), fmt.Sprintf("%d", s.MaxQueueMain)},
	})
	fmt.Fprintln(w)

	fmt.Fprintln(w, "--- Resource Utilization Summary ---")
	rows := make([][]string, 0, len(s.Resources))
	for _, r := range s.Resources {
		rows = append(rows, []string{
			r.Label,
			fmt.Sprintf("%.2f%%", 100*r.AvgUtil),
			fmt.Sprintf("%d", r.Capacity),
			fmt.Sprintf("%d", r.PeakQueue),
		})
	}
	writeTable(w, []string{"Resource", "Avg Utilization", "Capacity", "Peak Queue"}, rows)
}
