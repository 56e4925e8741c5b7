package jobber

import (
	"fmt"
	"strings"
	"time"
)

// Kind tags the flat error taxonomy jobber raises. There is deliberately no
// hierarchy here: every case the engine can fail with is a sibling, matched
// by a type assertion on *Error at the CLI boundary.
type Kind int

const (
	KindNoOpenJob Kind = iota
	KindOpenJob
	KindEndBeforeStart
	KindWarnings
	KindTagCollision
	KindEnterMessage
	KindUnknownColumn
	KindJobNotFound
	KindDatabaseEmpty
	KindOutputFileExists
	KindIO
	KindJSON
	KindFmt
	KindDateTimeParse
	KindRangeFormat
	KindMissingTags
	KindCancel
)

// Error is the single error type the engine returns. Kind selects which of
// the payload fields are meaningful; see the constructors below.
type Error struct {
	Kind     Kind
	Pos      int
	Job      *Job
	Start    time.Time
	End      time.Time
	Warnings []Warning
	Tags     TagSet
	Name     string
	Text     string
	Err      error
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Error() string {
	switch e.Kind {
	case KindNoOpenJob:
		return "there is no open job"
	case KindOpenJob:
		return fmt.Sprintf("job #%d is still open", e.Pos+1)
	case KindEndBeforeStart:
		return fmt.Sprintf("end %s is before start %s", e.End.Local().Format("01/02/2006 15:04"), e.Start.Local().Format("01/02/2006 15:04"))
	case KindWarnings:
		lines := make([]string, 0, len(e.Warnings))
		for _, w := range e.Warnings {
			lines = append(lines, w.String())
		}
		return strings.Join(lines, "\n")
	case KindTagCollision:
		return fmt.Sprintf("tags %s match more than one configuration entry", e.Tags.String())
	case KindEnterMessage:
		return "a message is required"
	case KindUnknownColumn:
		return fmt.Sprintf("unknown export column %q", e.Name)
	case KindJobNotFound:
		return fmt.Sprintf("no job at position #%d", e.Pos+1)
	case KindDatabaseEmpty:
		return "database is empty"
	case KindOutputFileExists:
		return fmt.Sprintf("output file %q already exists", e.Name)
	case KindIO:
		return fmt.Sprintf("I/O error: %s", e.Err)
	case KindJSON:
		return fmt.Sprintf("JSON error: %s", e.Err)
	case KindFmt:
		return e.Text
	case KindDateTimeParse:
		return fmt.Sprintf("could not parse date/time %q", e.Text)
	case KindRangeFormat:
		return fmt.Sprintf("could not parse range %q", e.Text)
	case KindMissingTags:
		return "tags are required"
	case KindCancel:
		return "canceled"
	default:
		return "unknown error"
	}
}

func errNoOpenJob() *Error     { return &Error{Kind: KindNoOpenJob} }
func errDatabaseEmpty() *Error { return &Error{Kind: KindDatabaseEmpty} }
func errEnterMessage() *Error  { return &Error{Kind: KindEnterMessage} }
func errMissingTags() *Error   { return &Error{Kind: KindMissingTags} }
func errOpenJob(pos int, j *Job) *Error {
	return &Error{Kind: KindOpenJob, Pos: pos, Job: j}
}
func errEndBeforeStart(start, end time.Time) *Error {
	return &Error{Kind: KindEndBeforeStart, Start: start, End: end}
}
func errTagCollision(tags TagSet) *Error { return &Error{Kind: KindTagCollision, Tags: tags} }
func errUnknownColumn(name string) *Error {
	return &Error{Kind: KindUnknownColumn, Name: name}
}
func errJobNotFound(pos int) *Error { return &Error{Kind: KindJobNotFound, Pos: pos} }

// ErrCancel is the error the top-level run loop returns when the user
// declines a warning confirmation; cmd/jobber checks for it by Kind to exit
// without printing an error.
func ErrCancel() *Error { return &Error{Kind: KindCancel} }

// ErrOutputFileExists is raised by cmd/jobber before it would silently
// truncate an existing -o/--output target.
func ErrOutputFileExists(path string) *Error {
	return &Error{Kind: KindOutputFileExists, Name: path}
}

func errIO(err error) *Error             { return &Error{Kind: KindIO, Err: err} }
func errJSON(err error) *Error           { return &Error{Kind: KindJSON, Err: err} }
func errDateTimeParse(text string) *Error { return &Error{Kind: KindDateTimeParse, Text: text} }
func errRangeFormat(text string) *Error   { return &Error{Kind: KindRangeFormat, Text: text} }
func errWarnings(w []Warning) *Error      { return &Error{Kind: KindWarnings, Warnings: w} }

// WarningKind enumerates the non-fatal check findings a process() call can
// bundle up before returning Warnings to the caller.
type WarningKind int

const (
	WarningOverlaps WarningKind = iota
	WarningUnknownTags
	WarningConfirmDeletion
)

// Warning is one non-fatal finding from the Checks subsystem.
type Warning struct {
	Kind      WarningKind
	Positions []int
	Jobs      []Job
	Tags      TagSet
}

func (w Warning) String() string {
	switch w.Kind {
	case WarningOverlaps:
		parts := make([]string, 0, len(w.Positions))
		for _, p := range w.Positions {
			parts = append(parts, fmt.Sprintf("#%d", p+1))
		}
		return fmt.Sprintf("this job overlaps with %s", strings.Join(parts, ", "))
	case WarningUnknownTags:
		return fmt.Sprintf("unknown tag(s): %s", w.Tags.String())
	case WarningConfirmDeletion:
		parts := make([]string, 0, len(w.Positions))
		for _, p := range w.Positions {
			parts = append(parts, fmt.Sprintf("#%d", p+1))
		}
		return fmt.Sprintf("this will delete job(s) %s", strings.Join(parts, ", "))
	default:
		return "warning"
	}
}
