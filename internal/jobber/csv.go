package jobber

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// csvColumns is the set of recognized export column names; the requested
// columns are validated against it before export begins.
var csvColumns = map[string]bool{
	"pos": true, "start": true, "end": true, "message": true,
	"hours": true, "tags": true, "pay": true,
}

// quoteCSV renders a string field RFC 4180-style, always wrapped in quotes
// with embedded quotes doubled — encoding/csv's Writer only quotes a field
// when its content requires it (a comma, quote or newline present), but the
// export format here always quotes string-typed columns regardless of
// content, so the quoting is done by hand.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// ExportCSV validates cols, then writes a header row of quoted column names
// followed by one row per job in list, in positional order. String-typed
// columns (start, end, message, tags) are always quoted; numeric columns
// (pos, hours, pay) never are.
func ExportCSV(w io.Writer, list JobList, cfg Configuration, ctx Context, cols []string) error {
	for _, c := range cols {
		if !csvColumns[c] {
			return errUnknownColumn(c)
		}
	}

	header := make([]string, len(cols))
	for i, c := range cols {
		header[i] = quoteCSV(c)
	}
	fmt.Fprintln(w, strings.Join(header, ","))

	for _, pj := range list {
		fields := make([]string, len(cols))
		for i, c := range cols {
			v, err := csvField(c, pj, cfg, ctx)
			if err != nil {
				return err
			}
			fields[i] = v
		}
		fmt.Fprintln(w, strings.Join(fields, ","))
	}
	return nil
}

func csvField(col string, pj PositionedJob, cfg Configuration, ctx Context) (string, error) {
	job := pj.Job
	switch col {
	case "pos":
		return strconv.Itoa(pj.Pos + 1), nil
	case "start":
		return quoteCSV(job.Start.Local().Format("01/02/2006 15:04")), nil
	case "end":
		return quoteCSV(job.EffectiveEnd(ctx).Local().Format("01/02/2006 15:04")), nil
	case "message":
		return quoteCSV(job.Message), nil
	case "tags":
		return quoteCSV(job.Tags.String()), nil
	case "hours":
		props, err := cfg.Resolve(job.Tags)
		if err != nil {
			return "", err
		}
		return formatHours(hours(job.Minutes(ctx), props)), nil
	case "pay":
		props, err := cfg.Resolve(job.Tags)
		if err != nil {
			return "", err
		}
		if props.Pay == nil {
			return "", nil
		}
		h := hours(job.Minutes(ctx), props)
		return pay(h, props).StringFixed(2), nil
	default:
		return "", errUnknownColumn(col)
	}
}
