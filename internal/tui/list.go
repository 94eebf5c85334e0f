package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/MKhiriev/go-task-keeper/models"
)

func statusIcon(s models.TaskStatus) string {
	switch s {
	case models.TaskStatusTodo:
		return "[ ]"
	case models.TaskStatusInProgress:
		return "[~]"
	case models.TaskStatusCompleted:
		return "[x]"
	default:
		return "[?]"
	}
}

// RenderTaskList renders tasks as a table, one row per task, in the order
// given.
func RenderTaskList(tasks []models.Task) string {
	if len(tasks) == 0 {
		return helpStyle.Render("No tasks yet. Add one with: task-keeper add -title \"...\"") + "\n"
	}

	rows := make([][]string, 0, len(tasks))
	for _, task := range tasks {
		rows = append(rows, []string{
			task.ID,
			statusIcon(task.Status) + " " + fitText(task.Title, maxTitleWidth),
			string(task.Priority),
			string(task.Status),
			formatTime(task.CreatedAt),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "TITLE", "PRIORITY", "STATUS", "CREATED").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerCellStyle
			}
			if row < 0 || row >= len(tasks) {
				return cellStyle
			}
			switch {
			case tasks[row].IsCompleted():
				return cellStyle.Inherit(completedStyle)
			case tasks[row].Priority == models.TaskPriorityHigh:
				return cellStyle.Inherit(highPriorityStyle)
			}
			return cellStyle
		})

	return t.String() + "\n" + helpStyle.Render(fmt.Sprintf("%d task(s)", len(tasks))) + "\n"
}

// RenderTask renders a single task with all of its fields.
func RenderTask(task models.Task) string {
	data := fmt.Sprintf("ID: %s\nTitle: %s\nDescription: %s\nStatus: %s %s\nPriority: %s\nCreated: %s\nUpdated: %s",
		task.ID,
		task.Title,
		valueOrDash(task.Description),
		statusIcon(task.Status), task.Status,
		task.Priority,
		formatTime(task.CreatedAt),
		formatTime(task.UpdatedAt),
	)
	return renderPage("TASK", data)
}
