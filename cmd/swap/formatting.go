package main

import (
	"os"

	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/swap/pkg/errors"
	"github.com/arthur-debert/swap/pkg/style"
)

func isTTY(out *os.File) bool {
	return isatty.IsTerminal(out.Fd()) || isatty.IsCygwinTerminal(out.Fd())
}

// formatError renders a failure for stderr in the "Error: <message>"
// contract the CLI promises. Piped output stays exactly the plain string.
func formatError(err error) string {
	if !isTTY(os.Stderr) {
		return "Error: " + errors.UserMessage(err)
	}
	return style.ErrorIndicator + " " + style.ErrorStyle.Render("Error:") + " " + errors.UserMessage(err)
}

// formatSuccess renders the success line for stdout. The indicator is
// only added on a terminal so piped output stays exactly the plain text.
func formatSuccess(text string) string {
	if !isTTY(os.Stdout) {
		return text
	}
	return style.SuccessIndicator + " " + style.SuccessStyle.Render(text)
}

// formatRename renders one "from -> to" line of the dry-run plan.
func formatRename(from, to string) string {
	if !isTTY(os.Stdout) {
		return from + " -> " + to
	}
	return style.PathStyle.Render(from) + " " + style.ArrowIndicator + " " + style.PathStyle.Render(to)
}

// formatNote renders a secondary annotation on a dry-run line.
func formatNote(text string) string {
	if !isTTY(os.Stdout) {
		return text
	}
	return style.MutedStyle.Render(text)
}

// formatWarning renders an advisory line such as the dry-run notice.
func formatWarning(text string) string {
	if !isTTY(os.Stdout) {
		return text
	}
	return style.WarningStyle.Render(text)
}
