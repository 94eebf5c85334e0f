package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-task-keeper/models"
)

// RenderStats renders the dashboard summary: the counters followed by the
// three short task lists.
func RenderStats(stats models.TaskStats) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Total: %d\n", stats.Total)
	fmt.Fprintf(&b, "Completed: %d\n", stats.Completed)
	fmt.Fprintf(&b, "Pending: %d\n", stats.Pending)
	fmt.Fprintf(&b, "Completion rate: %d%%\n", stats.CompletionRate)

	writeSection(&b, "Pending", stats.PendingTasks)
	writeSection(&b, "High priority", stats.HighPriorityTasks)
	writeSection(&b, "Recently completed", stats.CompletedTasks)

	return renderPage("STATS", strings.TrimRight(b.String(), "\n"))
}

func writeSection(b *strings.Builder, title string, tasks []models.Task) {
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	if len(tasks) == 0 {
		b.WriteString("  -\n")
		return
	}
	for _, task := range tasks {
		fmt.Fprintf(b, "  %s %s\n", statusIcon(task.Status), fitText(task.Title, maxTitleWidth))
	}
}
