package jobber

import (
	"strings"
	"time"
)

// Jobs is the database: an append-only ordered list of Job plus the tagged
// Configuration. Positions are stable 0-based indexes; deletions tombstone
// in place rather than renumbering.
type Jobs struct {
	Jobs          []Job         `json:"jobs"`
	Configuration Configuration `json:"configuration"`
	Modified      bool          `json:"-"`
}

// NewJobs returns an empty database with the default configuration.
func NewJobs() *Jobs {
	return &Jobs{Configuration: NewConfiguration()}
}

// OpenJob returns the database's single open job, if any.
func (db *Jobs) OpenJob() (int, Job, bool) {
	for i, j := range db.Jobs {
		if !j.IsDeleted() && j.IsOpen() {
			return i, j, true
		}
	}
	return 0, Job{}, false
}

// lastJob returns the highest-position non-deleted job, the "previous job"
// back-to-work inherits from.
func (db *Jobs) lastJob() (int, Job, bool) {
	for i := len(db.Jobs) - 1; i >= 0; i-- {
		if !db.Jobs[i].IsDeleted() {
			return i, db.Jobs[i], true
		}
	}
	return 0, Job{}, false
}

// KnownTags returns every tag name ever used by a non-deleted job or named in
// the configuration.
func (db *Jobs) KnownTags() TagSet {
	var known TagSet
	for _, j := range db.Jobs {
		if j.IsDeleted() {
			continue
		}
		for _, t := range j.Tags {
			known = known.add(t)
		}
	}
	for t := range db.Configuration.Tags {
		known = known.add(t)
	}
	return known
}

// filter applies a Range to the database, returning matching non-deleted
// jobs with their original positions. RangeCount is special-cased: it
// selects the full non-deleted set and then keeps the last N by position.
func (db *Jobs) filter(r Range, ctx Context) JobList {
	var all JobList
	for i, j := range db.Jobs {
		if j.IsDeleted() {
			continue
		}
		all = append(all, PositionedJob{Pos: i, Job: j})
	}
	if r.Kind == RangeCount {
		if r.Count >= len(all) {
			return all
		}
		return all[len(all)-r.Count:]
	}
	var out JobList
	for _, pj := range all {
		if r.Matches(pj.Pos, pj.Job, ctx) {
			out = append(out, pj)
		}
	}
	return out
}

func resolveMessageText(m MessageArg) string {
	if m.Kind == MsgGiven {
		return m.Text
	}
	return ""
}

func resolveTags(t TagsArg, base TagSet) TagSet {
	if t.Kind == TagsGiven {
		return base.Modify(t.Delta)
	}
	return base
}

func tagsFromArg(t TagsArg) TagSet {
	var out TagSet
	for _, d := range t.Delta {
		d = strings.TrimPrefix(strings.TrimPrefix(d, "+"), "-")
		out = out.add(d)
	}
	return out
}

// ChangeKind describes what process() actually did, for the CLI to report.
type ChangeKind int

const (
	ChangeNone ChangeKind = iota
	ChangePushed
	ChangeModified
	ChangeDeleted
	ChangeImported
	ChangeConfigured
	ChangeListed
	ChangeReported
	ChangeExported
	ChangeListedTags
	ChangeShowedConfiguration
)

// Change is the observable result of a successful process() call.
type Change struct {
	Kind          ChangeKind
	Pos           int
	Job           Job
	Positions     []int
	ImportedCount int
	NewTags       TagSet
	List          JobList
	Tags          TagSet
	Columns       []string
	Configuration Configuration
}

// Process is the single mutation entry point: it resolves cmd to an
// Operation against the current state, validates and applies it.
func (db *Jobs) Process(cmd Command, checks Checks, ctx Context) (Change, error) {
	op, err := db.interpret(cmd, ctx)
	if err != nil {
		return Change{}, err
	}
	return db.operate(op, checks, ctx)
}

func (db *Jobs) interpret(cmd Command, ctx Context) (Operation, error) {
	switch c := cmd.(type) {
	case StartCommand:
		job := Job{Start: c.Start, Message: resolveMessageText(c.Message), Tags: resolveTags(c.Tags, nil)}
		return PushOperation{Job: job}, nil

	case AddCommand:
		end := c.End
		job := Job{Start: c.Start, End: &end, Message: resolveMessageText(c.Message), Tags: resolveTags(c.Tags, nil)}
		return PushOperation{Job: job}, nil

	case BackCommand:
		job, err := db.backJob(c.Message, c.Tags, ctx)
		if err != nil {
			return nil, err
		}
		job.Start = c.Start
		job.End = nil
		return PushOperation{Job: job}, nil

	case BackAddCommand:
		job, err := db.backJob(c.Message, c.Tags, ctx)
		if err != nil {
			return nil, err
		}
		job.Start = c.Start
		end := c.End
		job.End = &end
		return PushOperation{Job: job}, nil

	case EndCommand:
		pos, existing, ok := db.OpenJob()
		if !ok {
			return nil, errNoOpenJob()
		}
		end := c.End
		existing.End = &end
		if c.Message.Kind == MsgGiven {
			existing.Message = c.Message.Text
		}
		existing.Tags = resolveTags(c.Tags, existing.Tags)
		return ModifyOperation{Pos: pos, Job: existing}, nil

	case EditCommand:
		if c.Pos < 0 || c.Pos >= len(db.Jobs) || db.Jobs[c.Pos].IsDeleted() {
			return nil, errJobNotFound(c.Pos)
		}
		job := db.Jobs[c.Pos]
		if c.Start != nil {
			job.Start = *c.Start
		}
		switch c.EndDur.Kind {
		case EODEnd:
			e := c.EndDur.End
			job.End = &e
		case EODDuration:
			e := job.Start.Add(time.Duration(c.EndDur.Duration.Minutes) * time.Minute)
			job.End = &e
		}
		if c.Message.Kind == MsgGiven {
			job.Message = c.Message.Text
		}
		job.Tags = resolveTags(c.Tags, job.Tags)
		return ModifyOperation{Pos: c.Pos, Job: job}, nil

	case DeleteCommand:
		r, err := ParseRange(c.RangeText, ctx)
		if err != nil {
			return nil, err
		}
		return DeleteOperation{Positions: db.filter(r, ctx).Positions()}, nil

	case ListCommand:
		r, err := ParseRange(c.RangeText, ctx)
		if err != nil {
			return nil, err
		}
		return ListOperation{List: db.filter(r, ctx)}, nil

	case ReportCommand:
		r, err := ParseRange(c.RangeText, ctx)
		if err != nil {
			return nil, err
		}
		return ReportOperation{List: db.filter(r, ctx)}, nil

	case ExportCSVCommand:
		r, err := ParseRange(c.RangeText, ctx)
		if err != nil {
			return nil, err
		}
		cols := strings.Split(c.Columns, ",")
		for i := range cols {
			cols[i] = strings.TrimSpace(cols[i])
		}
		return ExportCSVOperation{List: db.filter(r, ctx), Columns: cols}, nil

	case ShowConfigurationCommand:
		return ShowConfigurationOperation{}, nil

	case SetConfigurationCommand:
		if c.Tags.Kind == TagsGiven && len(tagsFromArg(c.Tags)) == 0 {
			return nil, errMissingTags()
		}
		return ConfigureOperation{Tags: tagsFromArg(c.Tags), Update: c.Update}, nil

	case LegacyImportCommand:
		return ImportOperation{File: c.File}, nil

	case ListTagsCommand:
		r, err := ParseRange(c.RangeText, ctx)
		if err != nil {
			return nil, err
		}
		return ListTagsOperation{Tags: db.filter(r, ctx).Tags()}, nil

	case MessageTagsCommand:
		pos, existing, ok := db.OpenJob()
		if !ok {
			return nil, errNoOpenJob()
		}
		if c.Message.Kind == MsgGiven {
			existing.Message = c.Message.Text
		}
		existing.Tags = resolveTags(c.Tags, existing.Tags)
		return ModifyOperation{Pos: pos, Job: existing}, nil

	case NothingCommand:
		return ListOperation{List: db.filter(Range{Kind: RangeAll}, ctx)}, nil

	default:
		return NothingOperation{}, nil
	}
}

// backJob resolves the message/tags carry-over for Back/BackAdd: message
// inherits from the previous job unless explicitly given (erroring on an
// empty database only when inheritance is actually needed); tags inherit or
// are modified by a delta, silently starting from an empty set on an empty
// database.
func (db *Jobs) backJob(msg MessageArg, tags TagsArg, ctx Context) (Job, error) {
	_, prev, ok := db.lastJob()
	var message string
	switch msg.Kind {
	case MsgGiven:
		message = msg.Text
	default:
		if !ok {
			return Job{}, errDatabaseEmpty()
		}
		message = prev.Message
	}
	var base TagSet
	if ok {
		base = prev.Tags
	}
	job := Job{Message: message, Tags: resolveTags(tags, base)}
	return job, nil
}

func (db *Jobs) operate(op Operation, checks Checks, ctx Context) (Change, error) {
	switch o := op.(type) {
	case PushOperation:
		if o.Job.IsOpen() {
			if pos, existing, ok := db.OpenJob(); ok {
				return Change{}, errOpenJob(pos, &existing)
			}
		}
		if !o.Job.IsOpen() && o.Job.Message == "" {
			return Change{}, errEnterMessage()
		}
		warnings, err := validatePending(db, checks, o.Job, -1, ctx)
		if err != nil {
			return Change{}, err
		}
		if len(warnings) > 0 {
			return Change{}, errWarnings(warnings)
		}
		db.Jobs = append(db.Jobs, o.Job)
		db.Modified = true
		return Change{Kind: ChangePushed, Pos: len(db.Jobs) - 1, Job: o.Job}, nil

	case ModifyOperation:
		if o.Pos < 0 || o.Pos >= len(db.Jobs) || db.Jobs[o.Pos].IsDeleted() {
			return Change{}, errJobNotFound(o.Pos)
		}
		if !o.Job.IsOpen() && o.Job.Message == "" {
			return Change{}, errEnterMessage()
		}
		warnings, err := validatePending(db, checks, o.Job, o.Pos, ctx)
		if err != nil {
			return Change{}, err
		}
		if len(warnings) > 0 {
			return Change{}, errWarnings(warnings)
		}
		db.Jobs[o.Pos] = o.Job
		db.Modified = true
		return Change{Kind: ChangeModified, Pos: o.Pos, Job: o.Job}, nil

	case DeleteOperation:
		if len(o.Positions) == 0 {
			return Change{Kind: ChangeDeleted}, nil
		}
		if checks.Has(CheckConfirmDeletion) {
			return Change{}, errWarnings([]Warning{{Kind: WarningConfirmDeletion, Positions: o.Positions}})
		}
		now := ctx.Now()
		for _, p := range o.Positions {
			t := now
			db.Jobs[p].Deleted = &t
		}
		db.Modified = true
		return Change{Kind: ChangeDeleted, Positions: o.Positions}, nil

	case ImportOperation:
		count, newTags, err := db.legacyImport(o.File)
		if err != nil {
			return Change{}, err
		}
		if count > 0 {
			db.Modified = true
		}
		return Change{Kind: ChangeImported, ImportedCount: count, NewTags: newTags}, nil

	case ConfigureOperation:
		db.Configuration.Configure(o.Tags, o.Update)
		db.Modified = true
		return Change{Kind: ChangeConfigured}, nil

	case ListOperation:
		return Change{Kind: ChangeListed, List: o.List}, nil

	case ReportOperation:
		return Change{Kind: ChangeReported, List: o.List}, nil

	case ExportCSVOperation:
		return Change{Kind: ChangeExported, List: o.List, Columns: o.Columns}, nil

	case ListTagsOperation:
		return Change{Kind: ChangeListedTags, Tags: o.Tags}, nil

	case ShowConfigurationOperation:
		return Change{Kind: ChangeShowedConfiguration, Configuration: db.Configuration}, nil

	default:
		return Change{Kind: ChangeNone}, nil
	}
}
