// Package report aggregates dependency logs into day buckets and rolling
// windows and renders them as HTML message text.
package report

import (
	"fmt"
	"html"
	"sort"
	"strconv"
	"strings"
	"time"

	"daybook/internal/domain"
)

// Window sizes in calendar days
const (
	WeekDays  = 7
	MonthDays = 30
)

// elapsed returns whole calendar days between a stored YYYY-MM-DD date and
// today. ok is false for malformed dates.
func elapsed(date string, today time.Time) (days int, ok bool) {
	d, err := domain.ParseDate(date)
	if err != nil {
		return 0, false
	}
	return domain.DaysBetween(d, today), true
}

// DailyTotals sums same-day readings and keeps dates less than window days
// old, sorted by date ascending. Malformed dates are skipped.
func DailyTotals(hours map[string][]float64, today time.Time, window int) []domain.DayTotal {
	var totals []domain.DayTotal
	for date, readings := range hours {
		days, ok := elapsed(date, today)
		if !ok || days >= window {
			continue
		}
		var sum float64
		for _, h := range readings {
			sum += h
		}
		totals = append(totals, domain.DayTotal{Date: date, Hours: sum})
	}

	sort.Slice(totals, func(i, j int) bool {
		return totals[i].Date < totals[j].Date
	})
	return totals
}

// Recent keeps entries less than window days old, in insertion order
func Recent(entries []domain.TextEntry, today time.Time, window int) []domain.TextEntry {
	var out []domain.TextEntry
	for _, e := range entries {
		days, ok := elapsed(e.Date, today)
		if !ok || days >= window {
			continue
		}
		out = append(out, e)
	}
	return out
}

// FormatHours renders an hour count the way users type it: 3.5, 2.0, 0.25
func FormatHours(h float64) string {
	s := strconv.FormatFloat(h, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eEnN") {
		s += ".0"
	}
	return s
}

// WeeklyUsage renders the 7-day phone usage section
func WeeklyUsage(totals []domain.DayTotal) string {
	var b strings.Builder
	b.WriteString("<b>Телефон - Отчёт за неделю:</b>\n")
	if len(totals) == 0 {
		b.WriteString("Нет записей за неделю.\n")
		return b.String()
	}
	writeTotals(&b, totals)
	return b.String()
}

// MonthlyUsage renders the 30-day phone usage section
func MonthlyUsage(totals []domain.DayTotal) string {
	var b strings.Builder
	b.WriteString("<b>Отчёт за месяц:</b>\n")
	if len(totals) == 0 {
		b.WriteString("Нет записей за месяц.")
		return b.String()
	}
	writeTotals(&b, totals)
	return b.String()
}

func writeTotals(b *strings.Builder, totals []domain.DayTotal) {
	for _, t := range totals {
		fmt.Fprintf(b, "%s: %s часов\n", t.Date, FormatHours(t.Hours))
	}
}

var listingTitles = map[domain.Category]struct{ title, empty string }{
	domain.CategorySweets: {
		title: "<b>Сладкое - записи за неделю:</b>\n",
		empty: "Нет записей по сладкому за последние 7 дней.",
	},
	domain.CategoryBadWords: {
		title: "<b>Плохие слова - записи за неделю:</b>\n",
		empty: "Нет записей по плохим словам за последние 7 дней.",
	},
}

// WeeklyListing renders free-text entries of a category one per line
func WeeklyListing(category domain.Category, entries []domain.TextEntry) (string, error) {
	texts, ok := listingTitles[category]
	if !ok {
		return "", fmt.Errorf("no listing for category %q", category)
	}
	if len(entries) == 0 {
		return texts.empty, nil
	}

	var b strings.Builder
	b.WriteString(texts.title)
	for _, e := range entries {
		fmt.Fprintf(&b, "%s: %s\n", e.Date, html.EscapeString(e.Text))
	}
	return b.String(), nil
}
