package notify

import (
	"fmt"
	"strings"
)

// Color hints for digest attachments.
const (
	ColorOnTrack  = "#36a64f"
	ColorStarted  = "#2196f3"
	ColorStalled  = "#ff9800"
)

// FormatDigest renders a digest report as a chat message.
func FormatDigest(report *DigestReport) Message {
	var sb strings.Builder
	for _, sd := range report.Sectors {
		fmt.Fprintf(&sb, "• %s: %d/%d pontos (%d%%)\n",
			sd.Sector, sd.Summary.CompletedPoints, sd.Summary.TotalPoints, sd.Summary.Percentage)
	}
	fmt.Fprintf(&sb, "\nTotal: %d/%d pontos (%d%%)",
		report.Overall.CompletedPoints, report.Overall.TotalPoints, report.Overall.Percentage)

	return Message{
		Title: fmt.Sprintf("Farol — progresso do plano estratégico (%s)", report.GeneratedAt.Format("02/01/2006")),
		Body:  sb.String(),
		Color: DigestColor(report.Overall.Percentage),
	}
}

// DigestColor picks an attachment color from the overall percentage.
func DigestColor(percentage int) string {
	switch {
	case percentage >= 70:
		return ColorOnTrack
	case percentage >= 30:
		return ColorStarted
	default:
		return ColorStalled
	}
}
