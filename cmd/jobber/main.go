// Command jobber is a CLI time tracker: record work intervals ("jobs") with
// a start, optional end, message and tags, then list, report, export, edit
// or delete them later against a small JSON database.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/fightling/jobber/internal/cli"
	"github.com/fightling/jobber/internal/config"
	"github.com/fightling/jobber/internal/jobber"
	"github.com/fightling/jobber/pkg/logger"
)

var log = logger.New("jobber", envOr("JOBBER_LOG_LEVEL", "info"))

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var (
		start, end, back, duration, message, tags string
		list, report, export, listTags            string
		csvColumns, deleteRange, legacyImport      string
		filename, output                           string
		editPos, maxHours                          int
		showConfiguration, dryRun                  bool
		resolution, pay                            float64
	)

	cmd := &cobra.Command{
		Use:          "jobber",
		Short:        "Track and report work time from the command line",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, _ []string) error {
			flags := c.Flags()
			args := jobber.ParsedArgs{
				StartGiven: flags.Changed("start"), StartText: start,
				EndGiven: flags.Changed("end"), EndText: end,
				BackGiven: flags.Changed("back"), BackText: back,
				DurationGiven: flags.Changed("duration"), DurationText: duration,
				ListGiven: flags.Changed("list"), ListText: list,
				ReportGiven: flags.Changed("report"), ReportText: report,
				ExportGiven: flags.Changed("export"), ExportText: export,
				CSVColumns:        csvColumns,
				EditGiven:         flags.Changed("edit"),
				EditPos:           editPos,
				DeleteGiven:       flags.Changed("delete"),
				DeleteText:        deleteRange,
				ListTagsGiven:     flags.Changed("list-tags"),
				ListTagsText:      listTags,
				ShowConfiguration: showConfiguration,
				LegacyImportGiven: flags.Changed("legacy-import"),
				LegacyImportFile:  legacyImport,
			}
			args.Message = messageArg(flags, message)
			args.Tags = tagsArg(flags, tags)
			if flags.Changed("resolution") {
				args.Resolution = &resolution
			}
			if flags.Changed("pay") {
				d := decimal.NewFromFloat(pay)
				args.Pay = &d
			}
			if flags.Changed("max-hours") {
				args.MaxHours = &maxHours
			}

			return run(args, filename, output, dryRun)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&start, "start", "s", "", "start a job, optionally at a given time")
	flags.Lookup("start").NoOptDefVal = " "
	flags.StringVarP(&end, "end", "e", "", "end the open job, optionally at a given time")
	flags.Lookup("end").NoOptDefVal = " "
	flags.StringVarP(&back, "back", "b", "", "start a new job inheriting the previous one's message/tags")
	flags.Lookup("back").NoOptDefVal = " "
	flags.StringVarP(&duration, "duration", "d", "", "duration for a new job, instead of an end time")
	flags.StringVarP(&message, "message", "m", "", "job message; pass with no value to enter one interactively")
	flags.Lookup("message").NoOptDefVal = " "
	flags.StringVarP(&tags, "tags", "t", "", "job tags, comma separated; +a,-b edits the existing set")
	flags.Lookup("tags").NoOptDefVal = " "
	flags.StringVarP(&list, "list", "l", "", "list jobs in a range")
	flags.Lookup("list").NoOptDefVal = " "
	flags.StringVarP(&report, "report", "r", "", "render the calendar report for a range")
	flags.Lookup("report").NoOptDefVal = " "
	flags.StringVarP(&export, "export", "E", "", "export a range as CSV")
	flags.Lookup("export").NoOptDefVal = " "
	flags.StringVar(&csvColumns, "csv", "", "CSV columns (default tags,start,hours,message)")
	flags.IntVar(&editPos, "edit", 0, "edit the job at this 1-based position")
	flags.StringVar(&deleteRange, "delete", "", "delete jobs in a range")
	flags.StringVar(&listTags, "list-tags", "", "list tags used in a range")
	flags.Lookup("list-tags").NoOptDefVal = " "
	flags.BoolVar(&showConfiguration, "configuration", false, "show the current configuration")
	flags.Float64Var(&resolution, "resolution", 0, "set the rounding resolution (fractional hours)")
	flags.Float64Var(&pay, "pay", 0, "set the hourly pay rate")
	flags.IntVar(&maxHours, "max-hours", 0, "set the daily hour cap")
	flags.StringVar(&legacyImport, "legacy-import", "", "import a legacy jobber CSV file")
	flags.StringVarP(&filename, "filename", "f", "", "override the database file path")
	flags.StringVarP(&output, "output", "o", "", "write export/report output to a file instead of stdout")
	flags.BoolVar(&dryRun, "dry", false, "do not save changes")

	return cmd
}

// NoOptDefVal is set to a single space rather than "" because pflag only lets
// a flag appear without a value when its NoOptDefVal is non-empty; with ""
// it demands an argument. The space itself is not a valid value (the empty
// string parses as "no value", a space does not parse at all), so it is
// trimmed back to "" before use, preserving the Absent/AskUser/Given
// tri-state the engine expects.
func trimmedDefault(v string) string {
	if v == " " {
		return ""
	}
	return v
}

func messageArg(flags *flag.FlagSet, value string) jobber.MessageArg {
	if !flags.Changed("message") {
		return jobber.MessageArg{Kind: jobber.MsgAbsent}
	}
	if trimmedDefault(value) == "" {
		return jobber.MessageArg{Kind: jobber.MsgAskUser}
	}
	return jobber.MessageArg{Kind: jobber.MsgGiven, Text: value}
}

func tagsArg(flags *flag.FlagSet, value string) jobber.TagsArg {
	if !flags.Changed("tags") {
		return jobber.TagsArg{Kind: jobber.TagsAbsent}
	}
	return jobber.TagsArg{Kind: jobber.TagsGiven, Delta: jobber.ParseTagList(trimmedDefault(value))}
}

func run(args jobber.ParsedArgs, filenameOverride, output string, dryRun bool) error {
	trimOptionalTexts(&args)

	appCfg, err := config.Load()
	if err != nil {
		log.Fatal("could not load configuration", "error", err)
	}
	dbPath := appCfg.Database
	if filenameOverride != "" {
		dbPath = filenameOverride
	}

	db, err := jobber.Load(dbPath)
	if err != nil {
		log.Fatal("could not load database", "path", dbPath, "error", err)
	}
	log.Info("loaded database", "path", dbPath, "jobs", len(db.Jobs))

	ctx := jobber.NewContext()
	tagIndex := jobber.NewTagIndex()
	tagIndex.Populate(db.KnownTags())
	out := cli.New(os.Stdout, tagIndex)

	var openStart *time.Time
	if _, job, ok := db.OpenJob(); ok {
		s := job.Start
		openStart = &s
	}

	command, err := jobber.BuildCommand(args, openStart, ctx)
	if err != nil {
		out.Error(err)
		return err
	}

	change, err := runLoop(db, command, jobber.AllChecks(), ctx, out)
	if err != nil {
		if jerr, ok := err.(*jobber.Error); ok && jerr.Kind == jobber.KindCancel {
			return nil
		}
		out.Error(err)
		return err
	}

	renderChange(out, change, db, ctx, output)

	if db.Modified && !dryRun {
		if err := db.Save(dbPath); err != nil {
			out.Error(err)
			return err
		}
		log.Info("saved database", "path", dbPath)
	} else if db.Modified && dryRun {
		out.Info(fmt.Sprintf("dry run: changes were not saved to %q", dbPath))
	}

	if pos, job, ok := db.OpenJob(); ok {
		out.Info(fmt.Sprintf("job #%d is still open (started %s)", pos+1, job.Start.Local().Format("01/02/2006 15:04")))
	}

	return nil
}

// trimOptionalTexts strips the NoOptDefVal placeholder space back to an
// empty string on every optional-value flag before the command builder sees
// it, so "" still means "no value given" downstream.
func trimOptionalTexts(args *jobber.ParsedArgs) {
	args.StartText = trimmedDefault(args.StartText)
	args.EndText = trimmedDefault(args.EndText)
	args.BackText = trimmedDefault(args.BackText)
	args.ListText = trimmedDefault(args.ListText)
	args.ReportText = trimmedDefault(args.ReportText)
	args.ExportText = trimmedDefault(args.ExportText)
	args.ListTagsText = trimmedDefault(args.ListTagsText)
}

// runLoop drives the confirm/enter-message interactive protocol around a
// single process() call: Warnings prompt for confirm-and-retry with all
// checks omitted; EnterMessage prompts for a multi-line message and retries
// with it filled in.
func runLoop(db *jobber.Jobs, cmd jobber.Command, checks jobber.Checks, ctx jobber.Context, out *cli.Formatter) (jobber.Change, error) {
	change, err := db.Process(cmd, checks, ctx)
	if err == nil {
		return change, nil
	}

	jerr, ok := err.(*jobber.Error)
	if !ok {
		return jobber.Change{}, err
	}

	switch jerr.Kind {
	case jobber.KindWarnings:
		for _, w := range jerr.Warnings {
			out.Warning(w)
		}
		if !out.Confirm("proceed anyway?") {
			return jobber.Change{}, jobber.ErrCancel()
		}
		return runLoop(db, cmd, jobber.NoChecks(), ctx, out)

	case jobber.KindEnterMessage:
		text := out.Enter("You need to enter a message.\nFinish input with an empty line (or Ctrl+C to cancel):")
		if text == "" {
			return jobber.Change{}, jerr
		}
		return runLoop(db, withMessage(cmd, text), checks, ctx, out)

	default:
		return jobber.Change{}, err
	}
}

func withMessage(cmd jobber.Command, text string) jobber.Command {
	given := jobber.MessageArg{Kind: jobber.MsgGiven, Text: text}
	switch c := cmd.(type) {
	case jobber.StartCommand:
		c.Message = given
		return c
	case jobber.AddCommand:
		c.Message = given
		return c
	case jobber.BackCommand:
		c.Message = given
		return c
	case jobber.BackAddCommand:
		c.Message = given
		return c
	case jobber.EndCommand:
		c.Message = given
		return c
	case jobber.EditCommand:
		c.Message = given
		return c
	case jobber.MessageTagsCommand:
		c.Message = given
		return c
	default:
		return cmd
	}
}

func renderChange(out *cli.Formatter, change jobber.Change, db *jobber.Jobs, ctx jobber.Context, output string) {
	switch change.Kind {
	case jobber.ChangePushed:
		out.Success("recorded job " + out.Job(change.Pos, change.Job))
	case jobber.ChangeModified:
		out.Success("updated job " + out.Job(change.Pos, change.Job))
	case jobber.ChangeDeleted:
		out.Success(fmt.Sprintf("deleted %d job(s)", len(change.Positions)))
	case jobber.ChangeImported:
		msg := fmt.Sprintf("imported %d job(s)", change.ImportedCount)
		if len(change.NewTags) > 0 {
			msg += fmt.Sprintf(", new tags: %s", change.NewTags.String())
		}
		out.Success(msg)
	case jobber.ChangeConfigured:
		out.Success("configuration updated")
	case jobber.ChangeListed:
		out.JobList(change.List)
	case jobber.ChangeListedTags:
		out.TagList(change.Tags)
	case jobber.ChangeReported:
		target, closeFn := outputWriter(out, output)
		defer closeFn()
		if target == nil {
			return
		}
		if err := jobber.Report(target, change.List, db.Configuration, ctx); err != nil {
			out.Error(err)
		}
	case jobber.ChangeExported:
		target, closeFn := outputWriter(out, output)
		defer closeFn()
		if target == nil {
			return
		}
		if err := jobber.ExportCSV(target, change.List, db.Configuration, ctx, change.Columns); err != nil {
			out.Error(err)
		}
	case jobber.ChangeShowedConfiguration:
		out.Configuration(change.Configuration)
	}
}

// outputWriter resolves the -o/--output target, confirming an overwrite
// before truncating an existing file.
func outputWriter(out *cli.Formatter, path string) (*os.File, func()) {
	if path == "" {
		return os.Stdout, func() {}
	}
	if _, err := os.Stat(path); err == nil {
		out.Error(jobber.ErrOutputFileExists(path))
		if !out.Confirm("overwrite it?") {
			return nil, func() {}
		}
	}
	f, err := os.Create(path)
	if err != nil {
		out.Error(err)
		return nil, func() {}
	}
	return f, func() { f.Close() }
}
