package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/username/time-tally/internal/calendar"
	"github.com/username/time-tally/internal/workhours"
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true)
	totalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Faint(true)
	holidayStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00CFCF"))
)

const rule = "═══════════════════════════════════════════════════════"

// printer writes plain text, styled only when out is a terminal
type printer struct {
	out   io.Writer
	color bool
}

func newPrinter(out io.Writer) printer {
	f, ok := out.(*os.File)
	return printer{
		out:   out,
		color: ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())),
	}
}

func (p printer) style(s lipgloss.Style, text string) string {
	if !p.color {
		return text
	}
	return s.Render(text)
}

func (p printer) printf(format string, a ...interface{}) {
	fmt.Fprintf(p.out, format, a...)
}

func printReport(out io.Writer, report *workhours.Report) {
	p := newPrinter(out)

	p.printf("%s\n", p.style(headerStyle, fmt.Sprintf("Work hours %s .. %s", report.Start, report.End)))
	p.printf("%s\n", rule)

	for _, year := range report.Years {
		for _, month := range year.Months {
			p.printf("\n%s\n", p.style(headerStyle, fmt.Sprintf("%s %d: %dh", month.Name, year.Year, month.Total)))
			p.printf("%s\n", p.style(mutedStyle, "  Period                   | Week | Days | Workdays | Hours"))
			p.printf("%s\n", p.style(mutedStyle, "  -------------------------+------+------+----------+------"))
			for _, wp := range month.Periods {
				p.printf("  %s .. %s | %4d | %4d | %8d | %5d\n",
					wp.Start, wp.End, wp.Week, wp.Length, wp.Workdays, wp.Hours)
			}
		}
		if len(report.Years) > 1 {
			p.printf("\n%s\n", p.style(headerStyle, fmt.Sprintf("Year %d: %dh", year.Year, year.Total)))
		}
	}

	p.printf("%s\n", rule)
	p.printf("%s\n", p.style(totalStyle, fmt.Sprintf("Total: %dh (%d workdays)", report.Total, report.Workdays)))
}

// printHolidays lists holidays one per line, dimming those on a weekend
func printHolidays(out io.Writer, holidays []calendar.Holiday) {
	p := newPrinter(out)

	for _, h := range holidays {
		line := fmt.Sprintf("%s  %s  %s", h.Date, h.Date.Weekday().String()[:3], h.Name)
		if h.Date.IsWeekend() {
			line = p.style(mutedStyle, line)
		} else {
			line = p.style(holidayStyle, line)
		}
		p.printf("%s\n", line)
	}
}
