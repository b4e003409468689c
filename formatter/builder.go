// Package formatter renders proof-checking issues for the terminal.
package formatter

import (
	"strings"

	"github.com/fatih/color"

	tt "github.com/formalverse/sequin/internal/types"
)

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	ruleStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	sequentStyle = color.New(color.FgWhite)
	messageStyle = color.New(color.FgRed)
)

// FormatIssues formats a slice of issues into a human-readable report.
func FormatIssues(issues []tt.Issue) string {
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatIssue(issue))
	}
	return builder.String()
}

// formatIssue creates one report entry. The header includes the rule and
// the failing node's location (e.g. "error: cut\n --> proof.yaml:root.1").
func formatIssue(issue tt.Issue) string {
	location := issue.Path
	if issue.Filename != "" {
		location = issue.Filename + ":" + issue.Path
	}

	var builder strings.Builder
	builder.WriteString(errorStyle.Sprint("error: ") + ruleStyle.Sprint(issue.Rule) + "\n")
	builder.WriteString(lineStyle.Sprint(" --> ") + fileStyle.Sprint(location) + "\n")
	builder.WriteString(lineStyle.Sprint("  | ") + sequentStyle.Sprint(issue.Sequent) + "\n")
	builder.WriteString(lineStyle.Sprint("  = ") + messageStyle.Sprint(issue.Message) + "\n\n")
	return builder.String()
}
