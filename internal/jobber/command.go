package jobber

import (
	"time"

	"github.com/shopspring/decimal"
)

// MsgKind discriminates the three states an optional message flag can be in:
// never passed, passed with no value (prompt the user), or passed with text.
type MsgKind int

const (
	MsgAbsent MsgKind = iota
	MsgAskUser
	MsgGiven
)

// MessageArg is the resolved state of -m/--message.
type MessageArg struct {
	Kind MsgKind
	Text string
}

// TagsKind discriminates whether -t/--tags was passed at all.
type TagsKind int

const (
	TagsAbsent TagsKind = iota
	TagsGiven
)

// TagsArg is the resolved state of -t/--tags: Delta is the raw comma-split
// entries, fed to TagSet.Modify by whatever carries the prior tag set.
type TagsArg struct {
	Kind  TagsKind
	Delta []string
}

// EndOrDurationKind discriminates how an Edit command changes a job's end.
type EndOrDurationKind int

const (
	// EODNone requests no change to the existing end.
	EODNone EndOrDurationKind = iota
	// EODEnd sets an explicit new end.
	EODEnd
	// EODDuration sets end = (possibly new) start + Duration.
	EODDuration
)

// EndOrDuration is the tagged variant driving Edit's end-field semantics.
type EndOrDuration struct {
	Kind     EndOrDurationKind
	End      time.Time
	Duration Duration
}

// Command is the user's classified intent, before resolution against the
// database. Each concrete type below is a distinct variant.
type Command interface{ isCommand() }

type StartCommand struct {
	Start   time.Time
	Message MessageArg
	Tags    TagsArg
}

type AddCommand struct {
	Start, End time.Time
	Message    MessageArg
	Tags       TagsArg
}

type BackCommand struct {
	Start   time.Time
	Message MessageArg
	Tags    TagsArg
}

type BackAddCommand struct {
	Start, End time.Time
	Message    MessageArg
	Tags       TagsArg
}

type EndCommand struct {
	End     time.Time
	Message MessageArg
	Tags    TagsArg
}

type EditCommand struct {
	Pos     int
	Start   *time.Time
	EndDur  EndOrDuration
	Message MessageArg
	Tags    TagsArg
}

type DeleteCommand struct {
	RangeText string
}

type ListCommand struct{ RangeText string }
type ReportCommand struct{ RangeText string }

type ExportCSVCommand struct {
	RangeText string
	Columns   string
}

type ShowConfigurationCommand struct{}

type SetConfigurationCommand struct {
	Tags   TagsArg
	Update Properties
}

type LegacyImportCommand struct{ File string }
type ListTagsCommand struct{ RangeText string }

type MessageTagsCommand struct {
	Message MessageArg
	Tags    TagsArg
}

type NothingCommand struct{}

func (StartCommand) isCommand()            {}
func (AddCommand) isCommand()               {}
func (BackCommand) isCommand()              {}
func (BackAddCommand) isCommand()           {}
func (EndCommand) isCommand()               {}
func (EditCommand) isCommand()              {}
func (DeleteCommand) isCommand()            {}
func (ListCommand) isCommand()              {}
func (ReportCommand) isCommand()            {}
func (ExportCSVCommand) isCommand()         {}
func (ShowConfigurationCommand) isCommand() {}
func (SetConfigurationCommand) isCommand()  {}
func (LegacyImportCommand) isCommand()      {}
func (ListTagsCommand) isCommand()          {}
func (MessageTagsCommand) isCommand()       {}
func (NothingCommand) isCommand()           {}

// ParsedArgs is the normalized form of the flat CLI flag surface (built in
// cmd/jobber), decoupled from cobra/pflag's types so the
// command builder stays a pure function.
type ParsedArgs struct {
	StartGiven bool
	StartText  string

	EndGiven bool
	EndText  string

	BackGiven bool
	BackText  string

	DurationGiven bool
	DurationText  string

	Message MessageArg
	Tags    TagsArg

	ListGiven bool
	ListText  string

	ReportGiven bool
	ReportText  string

	ExportGiven bool
	ExportText  string

	CSVColumns string

	EditGiven bool
	EditPos   int // 1-based, as given

	DeleteGiven bool
	DeleteText  string

	ListTagsGiven bool
	ListTagsText  string

	ShowConfiguration bool
	Resolution        *float64
	Pay               *decimal.Decimal
	MaxHours          *int

	LegacyImportGiven bool
	LegacyImportFile  string
}

const defaultCSVColumns = "tags,start,hours,message"

// BuildCommand classifies a ParsedArgs into exactly one Command, per the
// priority rules: edit, delete, start, back, end, list/report/export,
// show-configuration, set-configuration, legacy-import, list-tags,
// message/tags-only, or nothing.
func BuildCommand(a ParsedArgs, openStart *time.Time, ctx Context) (Command, error) {
	now := ctx.Now()
	nowLocal := now.Local()

	resolveAgainst := func(text string, base time.Time) (time.Time, error) {
		pdt, err := ParsePartialDateTime(text)
		if err != nil {
			return time.Time{}, err
		}
		return pdt.Resolve(base), nil
	}

	hasAny := a.StartGiven || a.EndGiven || a.DurationGiven || a.Message.Kind != MsgAbsent || a.Tags.Kind != TagsAbsent

	switch {
	case a.EditGiven && hasAny:
		pos := a.EditPos - 1
		var startPtr *time.Time
		endDur := EndOrDuration{Kind: EODNone}
		if a.StartGiven {
			start, err := resolveAgainst(a.StartText, nowLocal)
			if err != nil {
				return nil, err
			}
			if a.EndGiven {
				if a.EndText == "" {
					endDur = EndOrDuration{Kind: EODNone}
				} else {
					end, err := resolveAgainst(a.EndText, start)
					if err != nil {
						return nil, err
					}
					if end.Before(start) {
						start = start.AddDate(0, 0, -1)
					}
					endDur = EndOrDuration{Kind: EODEnd, End: end}
				}
			} else if a.DurationGiven {
				dur, err := ParseDuration(a.DurationText)
				if err != nil {
					return nil, err
				}
				endDur = EndOrDuration{Kind: EODDuration, Duration: dur}
			}
			startPtr = &start
		} else if a.EndGiven {
			if a.EndText != "" {
				end, err := resolveAgainst(a.EndText, nowLocal)
				if err != nil {
					return nil, err
				}
				endDur = EndOrDuration{Kind: EODEnd, End: end}
			}
		} else if a.DurationGiven {
			dur, err := ParseDuration(a.DurationText)
			if err != nil {
				return nil, err
			}
			endDur = EndOrDuration{Kind: EODDuration, Duration: dur}
		}
		return EditCommand{Pos: pos, Start: startPtr, EndDur: endDur, Message: a.Message, Tags: a.Tags}, nil

	case a.DeleteGiven:
		return DeleteCommand{RangeText: a.DeleteText}, nil

	case a.StartGiven:
		start, err := resolveAgainst(a.StartText, nowLocal)
		if err != nil {
			return nil, err
		}
		if a.EndGiven {
			var end time.Time
			if a.EndText == "" {
				end = now
				if end.Before(start) {
					start = start.AddDate(0, 0, -1)
				}
			} else {
				end, err = resolveAgainst(a.EndText, start)
				if err != nil {
					return nil, err
				}
				if end.Before(start) {
					end = end.AddDate(0, 0, 1)
				}
			}
			return AddCommand{Start: start, End: end, Message: a.Message, Tags: a.Tags}, nil
		}
		if a.DurationGiven {
			dur, err := ParseDuration(a.DurationText)
			if err != nil {
				return nil, err
			}
			end := start.Add(time.Duration(dur.Minutes) * time.Minute)
			return AddCommand{Start: start, End: end, Message: a.Message, Tags: a.Tags}, nil
		}
		return StartCommand{Start: start, Message: a.Message, Tags: a.Tags}, nil

	case a.BackGiven:
		start, err := resolveAgainst(a.BackText, nowLocal)
		if err != nil {
			return nil, err
		}
		if a.EndGiven {
			var end time.Time
			if a.EndText == "" {
				end = now
				if end.Before(start) {
					start = start.AddDate(0, 0, -1)
				}
			} else {
				end, err = resolveAgainst(a.EndText, start)
				if err != nil {
					return nil, err
				}
				if end.Before(start) {
					end = end.AddDate(0, 0, 1)
				}
			}
			return BackAddCommand{Start: start, End: end, Message: a.Message, Tags: a.Tags}, nil
		}
		if a.DurationGiven {
			dur, err := ParseDuration(a.DurationText)
			if err != nil {
				return nil, err
			}
			end := start.Add(time.Duration(dur.Minutes) * time.Minute)
			return BackAddCommand{Start: start, End: end, Message: a.Message, Tags: a.Tags}, nil
		}
		return BackCommand{Start: start, Message: a.Message, Tags: a.Tags}, nil

	case a.EndGiven:
		base := nowLocal
		if openStart != nil {
			base = openStart.Local()
		}
		var end time.Time
		if a.EndText == "" {
			end = now
		} else {
			var err error
			end, err = resolveAgainst(a.EndText, base)
			if err != nil {
				return nil, err
			}
		}
		return EndCommand{End: end, Message: a.Message, Tags: a.Tags}, nil

	case a.ListGiven:
		return ListCommand{RangeText: a.ListText}, nil

	case a.ReportGiven:
		return ReportCommand{RangeText: a.ReportText}, nil

	case a.ExportGiven:
		cols := a.CSVColumns
		if cols == "" {
			cols = defaultCSVColumns
		}
		return ExportCSVCommand{RangeText: a.ExportText, Columns: cols}, nil

	case a.ShowConfiguration:
		return ShowConfigurationCommand{}, nil

	case a.Resolution != nil || a.Pay != nil || a.MaxHours != nil:
		return SetConfigurationCommand{
			Tags:   a.Tags,
			Update: Properties{Resolution: a.Resolution, Pay: a.Pay, MaxHours: a.MaxHours},
		}, nil

	case a.LegacyImportGiven:
		return LegacyImportCommand{File: a.LegacyImportFile}, nil

	case a.ListTagsGiven:
		return ListTagsCommand{RangeText: a.ListTagsText}, nil

	case a.Message.Kind != MsgAbsent || a.Tags.Kind != TagsAbsent:
		return MessageTagsCommand{Message: a.Message, Tags: a.Tags}, nil

	default:
		return NothingCommand{}, nil
	}
}
