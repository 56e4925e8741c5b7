// Package cli renders jobber's user-facing output — job listings, warnings,
// errors and interactive prompts — and owns the only two points of direct
// terminal I/O in the program (confirm/enter). Argument parsing lives in
// cmd/jobber; this package never touches the database.
package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/fightling/jobber/internal/jobber"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	headerColor  = color.New(color.FgMagenta, color.Bold)
	dimColor     = color.New(color.FgBlack, color.Bold)
)

// Formatter prints jobber's results, status lines, warnings and prompts to
// out, and errors to stderr; it reads stdin for the two interactive flows
// (confirm, multi-line message entry).
type Formatter struct {
	out      *os.File
	tagIndex *jobber.TagIndex
}

// New returns a Formatter writing to out, using tagIndex to color tags.
func New(out *os.File, tagIndex *jobber.TagIndex) *Formatter {
	return &Formatter{out: out, tagIndex: tagIndex}
}

// Success prints a one-line affirmative message.
func (f *Formatter) Success(msg string) {
	fmt.Fprintln(f.out, successColor.Sprint("✓"), msg)
}

// Info prints a one-line diagnostic/status message.
func (f *Formatter) Info(msg string) {
	fmt.Fprintln(f.out, infoColor.Sprint("•"), msg)
}

// Error prints an engine error in jobber's "ERROR: <message>" convention.
func (f *Formatter) Error(err error) {
	fmt.Fprintln(os.Stderr, errorColor.Sprint("ERROR:"), err.Error())
}

// Warning prints a single non-fatal finding.
func (f *Formatter) Warning(w jobber.Warning) {
	fmt.Fprintln(f.out, warningColor.Sprint("warning:"), w.String())
}

// Job renders one job as "#pos  start - end  tags  message".
func (f *Formatter) Job(pos int, job jobber.Job) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%-4d ", pos+1)
	b.WriteString(job.Start.Local().Format("01/02/2006 15:04"))
	b.WriteString(" - ")
	if job.IsOpen() {
		b.WriteString(dimColor.Sprint("now"))
	} else {
		b.WriteString(job.End.Local().Format("15:04"))
	}
	if len(job.Tags) > 0 {
		b.WriteString("  ")
		for i, t := range job.Tags {
			if i > 0 {
				b.WriteString(",")
			}
			b.WriteString(f.tagIndex.ColorFor(t).Sprint(t))
		}
	}
	if job.Message != "" {
		b.WriteString("  ")
		b.WriteString(job.Message)
	}
	return b.String()
}

// JobList renders a filtered job list as a table.
func (f *Formatter) JobList(list jobber.JobList) {
	table := tablewriter.NewWriter(f.out)
	table.SetHeader([]string{"#", "start", "end", "tags", "message"})
	table.SetBorder(false)
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.FgHiMagentaColor},
		tablewriter.Colors{tablewriter.FgHiMagentaColor},
		tablewriter.Colors{tablewriter.FgHiMagentaColor},
		tablewriter.Colors{tablewriter.FgHiMagentaColor},
		tablewriter.Colors{tablewriter.FgHiMagentaColor},
	)
	for _, pj := range list {
		end := "now"
		if pj.Job.End != nil {
			end = pj.Job.End.Local().Format("01/02/2006 15:04")
		}
		table.Append([]string{
			fmt.Sprintf("%d", pj.Pos+1),
			pj.Job.Start.Local().Format("01/02/2006 15:04"),
			end,
			pj.Job.Tags.String(),
			pj.Job.Message,
		})
	}
	table.Render()
}

// TagList prints the distinct tags used by a filtered range, as produced by
// --list-tags.
func (f *Formatter) TagList(tags jobber.TagSet) {
	if len(tags) == 0 {
		fmt.Fprintln(f.out, "Currently no tags are used.")
		return
	}
	colored := make([]string, len(tags))
	for i, t := range tags {
		colored[i] = f.tagIndex.ColorFor(t).Sprint(t)
	}
	fmt.Fprintln(f.out, "Known tags:", strings.Join(colored, ","))
}

// Configuration prints a Configuration's base and tag-scoped properties.
func (f *Formatter) Configuration(cfg jobber.Configuration) {
	fmt.Fprintln(f.out, headerColor.Sprint("base:"), propertiesString(cfg.Base))
	for tag, props := range cfg.Tags {
		fmt.Fprintln(f.out, " ", f.tagIndex.ColorFor(tag).Sprint(tag)+":", propertiesString(props))
	}
}

func propertiesString(p jobber.Properties) string {
	var parts []string
	if p.Resolution != nil {
		parts = append(parts, fmt.Sprintf("resolution=%.2f", *p.Resolution))
	}
	if p.Pay != nil {
		parts = append(parts, "pay="+p.Pay.StringFixed(2))
	}
	if p.MaxHours != nil {
		parts = append(parts, fmt.Sprintf("max_hours=%d", *p.MaxHours))
	}
	return strings.Join(parts, " ")
}

// Confirm asks a yes/no question on stdin; EOF and an explicit "no" both
// count as declined, matching the engine's Cancel semantics.
func (f *Formatter) Confirm(question string) bool {
	fmt.Fprint(f.out, warningColor.Sprint(question), " [y/N] ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.TrimSpace(strings.ToLower(line))
	return line == "y" || line == "yes"
}

// Enter prompts for a multi-line message, terminated by an empty line (or
// EOF). An entirely blank entry is reported back as the empty string; the
// caller raises EnterMessage on that.
func (f *Formatter) Enter(prompt string) string {
	fmt.Fprintln(f.out, infoColor.Sprint(prompt))
	reader := bufio.NewReader(os.Stdin)
	var lines []string
	for {
		line, err := reader.ReadString('\n')
		line = strings.TrimRight(line, "\n")
		if line == "" {
			break
		}
		lines = append(lines, line)
		if err != nil {
			break
		}
	}
	return strings.Join(lines, "\n")
}
