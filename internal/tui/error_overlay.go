package tui

// RenderError renders err in a bordered box for stderr.
func RenderError(err error) string {
	content := errorStyle.Render("Error") + "\n\n" + HumanizeError(err)
	return overlayBoxStyle.Render(content) + "\n"
}

// RenderMessage renders a one-line confirmation such as "Task deleted".
func RenderMessage(message string) string {
	return message + "\n"
}
