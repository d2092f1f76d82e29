// Package summary renders the outcome of a bring-up for a terminal.
package summary

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/imamik/kafka-topology/internal/provisioning"
	"github.com/imamik/kafka-topology/internal/topology"
)

// styleFunc is a single-string styling function.
type styleFunc func(string) string

// sf wraps a lipgloss.Style into a styleFunc.
func sf(s lipgloss.Style) styleFunc {
	return func(str string) string { return s.Render(str) }
}

// Render returns a human-readable summary of report.
func Render(report *provisioning.Report) string {
	if report == nil {
		return ""
	}

	var b strings.Builder

	renderHeader(&b, report)
	renderPhases(&b, report)
	renderNodes(&b, report)
	if len(report.Topics) > 0 {
		renderTopics(&b, report)
	}
	renderFooter(&b, report)

	return b.String()
}

func renderHeader(b *strings.Builder, r *provisioning.Report) {
	fmt.Fprintf(b, "%s %s\n",
		titleStyle.Render("Kafka cluster "+r.Cluster),
		subtitleStyle.Render("("+r.Image+")"))
	if r.RunID != "" {
		fmt.Fprintf(b, "%s\n", dimStyle.Render("run "+r.RunID+" on network "+r.Network))
	}
}

func renderPhases(b *strings.Builder, r *provisioning.Report) {
	b.WriteString(sectionStyle.Render("  Phases"))
	b.WriteString("\n")

	for _, p := range r.Phases {
		icon := checkMark
		style := sf(readyStyle)
		if p.Failed {
			icon = crossMark
			style = sf(failedStyle)
		}
		fmt.Fprintf(b, "    %s %-22s %s\n",
			style(icon), style(p.Name), dimStyle.Render(formatDuration(p.Duration)))
	}
}

func renderNodes(b *strings.Builder, r *provisioning.Report) {
	b.WriteString(sectionStyle.Render("  Nodes"))
	b.WriteString("\n")

	for _, n := range r.Nodes {
		fmt.Fprintf(b, "    %d %-24s %s\n",
			n.Ordinal, n.Hostname, dimStyle.Render(formatPorts(n)))
	}
}

func renderTopics(b *strings.Builder, r *provisioning.Report) {
	b.WriteString(sectionStyle.Render("  Topics"))
	b.WriteString("\n")

	for _, t := range r.Topics {
		fmt.Fprintf(b, "    %s %s\n", readyStyle.Render(checkMark), t)
	}
}

func renderFooter(b *strings.Builder, r *provisioning.Report) {
	if r.Succeeded {
		b.WriteString(footerStyle.Render(readyStyle.Render("Cluster is ready")))
		b.WriteString("\n")
		return
	}
	b.WriteString(footerStyle.Render(failedStyle.Render("Bring-up failed: " + r.Error)))
	b.WriteString("\n")
}

func formatPorts(n topology.NodeDescriptor) string {
	return fmt.Sprintf("zookeeper %s, broker %s", n.Zookeeper, n.Broker)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return d.Round(time.Millisecond).String()
	}
	return d.Round(100 * time.Millisecond).String()
}
