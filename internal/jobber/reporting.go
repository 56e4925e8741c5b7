package jobber

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/shopspring/decimal"
)

type dayAggregate struct {
	totalHours float64
	pay        decimal.Decimal
	tagHours   map[string]float64
	maxHours   map[string]int
}

// Report renders the calendar report for list over a month-by-month grid,
// splitting each job across local-midnight boundaries, accumulating hours
// per day and per tag, and writing a tablewriter grid per month followed by
// the grand total.
func Report(w io.Writer, list JobList, cfg Configuration, ctx Context) error {
	// year -> month -> day -> aggregate
	years := map[int]map[time.Month]map[int]*dayAggregate{}
	totalHours := 0.0
	totalPay := decimal.Zero
	anyPay := false
	jobCount := 0

	for _, pj := range list {
		jobCount++
		for _, sub := range pj.Job.Split(ctx) {
			props, err := cfg.Resolve(sub.Tags)
			if err != nil {
				return err
			}
			h := hours(sub.Minutes(ctx), props)
			local := sub.Start.Local()
			y, m, d := local.Year(), local.Month(), local.Day()

			if years[y] == nil {
				years[y] = map[time.Month]map[int]*dayAggregate{}
			}
			if years[y][m] == nil {
				years[y][m] = map[int]*dayAggregate{}
			}
			agg := years[y][m][d]
			if agg == nil {
				agg = &dayAggregate{tagHours: map[string]float64{}, maxHours: map[string]int{}}
				years[y][m][d] = agg
			}
			agg.totalHours += h
			tags := sub.Tags
			if len(tags) == 0 {
				tags = TagSet{""}
			}
			jobPay := pay(h, props)
			for _, t := range tags {
				agg.tagHours[t] += h
				if tp, ok := cfg.Tags[t]; ok && tp.MaxHours != nil {
					agg.maxHours[t] = *tp.MaxHours
				}
			}
			if props.Pay != nil {
				agg.pay = agg.pay.Add(jobPay)
				anyPay = true
			}
			totalHours += h
			if props.Pay != nil {
				totalPay = totalPay.Add(jobPay)
			}
		}
	}

	var sortedYears []int
	for y := range years {
		sortedYears = append(sortedYears, y)
	}
	sort.Ints(sortedYears)

	for _, y := range sortedYears {
		var months []time.Month
		for m := range years[y] {
			months = append(months, m)
		}
		sort.Slice(months, func(i, j int) bool { return months[i] < months[j] })
		for _, m := range months {
			renderMonth(w, y, m, years[y][m])
		}
	}

	footer := fmt.Sprintf("Total: %d job(s), %s hours", jobCount, formatHours(totalHours))
	if anyPay {
		footer += " = $" + totalPay.StringFixed(2)
	}
	fmt.Fprintln(w, footer)
	return nil
}

func formatHours(h float64) string {
	if h == float64(int64(h)) {
		return fmt.Sprintf("%d", int64(h))
	}
	return fmt.Sprintf("%.2f", h)
}

func renderMonth(w io.Writer, year int, month time.Month, days map[int]*dayAggregate) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lastDay := first.AddDate(0, 1, -1).Day()

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Total"})
	table.SetBorder(false)
	table.SetAutoWrapText(false)

	row := make([]string, 8)
	weekTotal := 0.0
	startWeekday := int(first.Weekday())

	for i := 0; i < startWeekday; i++ {
		row[i] = ""
	}

	flushRow := func() {
		row[7] = formatHours(weekTotal)
		table.Append(append([]string{}, row...))
		row = make([]string, 8)
		weekTotal = 0
	}

	col := startWeekday
	monthTotal := 0.0
	monthPay := decimal.Zero
	anyPay := false
	for d := 1; d <= lastDay; d++ {
		agg := days[d]
		cell := "-"
		if agg != nil {
			cell = formatHours(agg.totalHours)
			if agg.totalHours > 24.0 {
				cell = color.New(color.FgRed, color.Bold).Sprint(cell)
			} else if exceedsMaxHours(agg) {
				cell = color.New(color.FgYellow, color.Bold).Sprint(cell)
			}
			weekTotal += agg.totalHours
			monthTotal += agg.totalHours
			if !agg.pay.IsZero() {
				monthPay = monthPay.Add(agg.pay)
				anyPay = true
			}
		}
		row[col] = cell
		col++
		if col == 7 {
			flushRow()
			col = 0
		}
	}
	if col != 0 {
		flushRow()
	}
	table.Render()

	line := fmt.Sprintf("%s %d: %s hours", month.String()[:3], year, formatHours(monthTotal))
	if anyPay {
		line += " = $" + monthPay.StringFixed(2)
	}
	fmt.Fprintln(w, line)
}

func exceedsMaxHours(agg *dayAggregate) bool {
	for tag, h := range agg.tagHours {
		if max, ok := agg.maxHours[tag]; ok && h > float64(max) {
			return true
		}
	}
	return false
}
