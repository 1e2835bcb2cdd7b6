package format

import (
	"strings"
	"time"

	"github.com/levelupgamer/lu/internal/config"
)

// datePresets maps display_date presets to full and short (no year) layouts.
var datePresets = map[string][2]string{
	"dd/mm/yyyy": {"02/01/2006", "02/01"},
	"mm/dd/yyyy": {"01/02/2006", "01/02"},
	"yyyy-mm-dd": {"2006-01-02", "01-02"},
}

const fallbackShortDate = "Jan 02"

// DateTime formats a time with both date and time according to config.
// Example output: "23/01/2024 15:04" or "01/23/2024 3:04 PM"
func DateTime(t time.Time) string {
	return Date(t) + " " + Time(t)
}

// DateTimeShort formats a time with short date and time (no year).
func DateTimeShort(t time.Time) string {
	return DateShort(t) + " " + Time(t)
}

// Date formats only the date portion according to config.
func Date(t time.Time) string {
	return t.Local().Format(dateLayout())
}

// DateShort formats date without year.
func DateShort(t time.Time) string {
	return t.Local().Format(dateLayoutShort())
}

// Time formats only the time portion according to config.
func Time(t time.Time) string {
	if is12h() {
		return t.Local().Format("3:04 PM")
	}
	return t.Local().Format("15:04")
}

// Full formats with full date and time with seconds.
func Full(t time.Time) string {
	if is12h() {
		return Date(t) + " " + t.Local().Format("3:04:05 PM")
	}
	return Date(t) + " " + t.Local().Format("15:04:05")
}

func displayDate() string {
	v, _ := config.Get("display_date")
	return strings.TrimSpace(v)
}

func dateLayout() string {
	v := displayDate()
	if preset, ok := datePresets[v]; ok {
		return preset[0]
	}
	if v == "" {
		return datePresets["dd/mm/yyyy"][0]
	}
	// Anything else is treated as a Go layout.
	return v
}

// dateLayoutShort derives a year-less layout. Custom layouts have their
// year tokens stripped.
func dateLayoutShort() string {
	v := displayDate()
	if preset, ok := datePresets[v]; ok {
		return preset[1]
	}
	if v == "" {
		return datePresets["dd/mm/yyyy"][1]
	}

	short := v
	for _, year := range []string{"2006", "/06", "-06", " 06"} {
		short = strings.ReplaceAll(short, year, "")
	}
	short = strings.Trim(strings.TrimSpace(short), "/-")
	if short == "" {
		return fallbackShortDate
	}
	return short
}

func is12h() bool {
	v, _ := config.Get("display_time")
	return v == "12h"
}
