package format

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2024, 1, 23, 15, 4, 5, 0, time.Local)

func setupConfig(t *testing.T, content string) {
	t.Helper()

	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)

	// A non-empty file keeps ReadLines from writing defaults.
	if content == "" {
		content = "# empty"
	}
	require.NoError(t, os.WriteFile(filepath.Join(home, ".lurc"), []byte(content+"\n"), 0600))
}

func TestDate(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   string
	}{
		{name: "default", config: "", want: "23/01/2024"},
		{name: "mm/dd/yyyy", config: "display_date=mm/dd/yyyy", want: "01/23/2024"},
		{name: "yyyy-mm-dd", config: "display_date=yyyy-mm-dd", want: "2024-01-23"},
		{name: "dd/mm/yyyy", config: "display_date=dd/mm/yyyy", want: "23/01/2024"},
		{name: "custom Go layout", config: "display_date=Jan 02 2006", want: "Jan 23 2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupConfig(t, tt.config)
			require.Equal(t, tt.want, Date(testTime))
		})
	}
}

func TestDateShort(t *testing.T) {
	tests := []struct {
		name   string
		config string
		want   string
	}{
		{name: "default", config: "", want: "23/01"},
		{name: "mm/dd/yyyy", config: "display_date=mm/dd/yyyy", want: "01/23"},
		{name: "yyyy-mm-dd", config: "display_date=yyyy-mm-dd", want: "01-23"},
		{name: "custom with /06", config: "display_date=01/02/06", want: "01/23"},
		{name: "custom with -06", config: "display_date=01-02-06", want: "01-23"},
		{name: "custom with space 06", config: "display_date=01/02 06", want: "01/23"},
		{name: "only year falls back", config: "display_date=/2006/", want: "Jan 23"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupConfig(t, tt.config)
			require.Equal(t, tt.want, DateShort(testTime))
		})
	}
}

func TestTime(t *testing.T) {
	tests := []struct {
		name   string
		config string
		when   time.Time
		want   string
	}{
		{name: "default 24h", config: "", when: testTime, want: "15:04"},
		{name: "explicit 24h", config: "display_time=24h", when: testTime, want: "15:04"},
		{name: "12h afternoon", config: "display_time=12h", when: testTime, want: "3:04 PM"},
		{name: "12h morning", config: "display_time=12h", when: time.Date(2024, 1, 23, 9, 30, 0, 0, time.Local), want: "9:30 AM"},
		{name: "unknown falls back to 24h", config: "display_time=unknown", when: testTime, want: "15:04"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupConfig(t, tt.config)
			require.Equal(t, tt.want, Time(tt.when))
		})
	}
}

func TestDateTime(t *testing.T) {
	setupConfig(t, "display_date=mm/dd/yyyy")
	require.Equal(t, "01/23/2024 15:04", DateTime(testTime))
	require.Equal(t, "01/23 15:04", DateTimeShort(testTime))
}

func TestFull(t *testing.T) {
	setupConfig(t, "display_date=yyyy-mm-dd\ndisplay_time=12h")
	require.Equal(t, "2024-01-23 3:04:05 PM", Full(testTime))
}
