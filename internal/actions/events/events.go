package events

import (
	"encoding/json"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/levelupgamer/lu/internal/dispatchers"
	"github.com/levelupgamer/lu/internal/domain"
	"github.com/levelupgamer/lu/internal/format"
	"github.com/levelupgamer/lu/internal/log"
	"github.com/levelupgamer/lu/internal/ui/style"
	"github.com/levelupgamer/lu/internal/usage"
)

// startLayouts are accepted by --starts, tried in order.
var startLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseStart reads a start time in local time unless the value carries an offset.
func ParseStart(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range startLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, usage.InvalidValue("--starts", s, "use YYYY-MM-DD, YYYY-MM-DD HH:MM or RFC 3339")
}

// List prints every event ordered by start time. With --watch it reprints
// the list whenever it differs from the last one printed.
func List(args []string, flags *dispatchers.ParsedFlags) error {
	return list(args, flags, DefaultDeps())
}

func list(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	asJSON := flags.Has("--json")

	if !flags.Has("--watch") {
		events, err := st.ListEvents()
		if err != nil {
			return fmt.Errorf("list events: %w", err)
		}
		return printEvents(events, asJSON, deps)
	}

	ctx, stop := deps.WatchContext()
	defer stop()

	var last []domain.Event
	first := true
	for events := range st.WatchEvents(ctx) {
		if !first && slices.EqualFunc(last, events, domain.Event.Equal) {
			continue
		}
		if !first && !asJSON {
			_, _ = deps.Println(style.Muted("--- " + deps.formatTime(deps.now()) + " ---"))
		}
		first = false
		last = events
		if err := printEvents(events, asJSON, deps); err != nil {
			return err
		}
	}
	return nil
}

func printEvents(events []domain.Event, asJSON bool, deps Deps) error {
	if asJSON {
		if events == nil {
			events = []domain.Event{}
		}
		data, err := json.Marshal(events)
		if err != nil {
			return fmt.Errorf("encode events: %w", err)
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	if len(events) == 0 {
		_, _ = deps.Println(style.Muted("No events scheduled"))
		return nil
	}

	var b strings.Builder
	for _, e := range events {
		fmt.Fprintf(&b, "%s  %s  %s",
			style.Info(e.ID),
			style.Muted(deps.formatTime(e.StartsAt)),
			e.Title,
		)
		if e.Location != "" {
			b.WriteString(style.Muted(" @ " + e.Location))
		}
		b.WriteString("\n")
	}
	_, _ = deps.Printf("%s", b.String())
	return nil
}

// Show prints a single event.
func Show(args []string, flags *dispatchers.ParsedFlags) error {
	return show(args, flags, DefaultDeps())
}

func show(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return usage.MissingArgument("id")
	}

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	e, found, err := st.GetEvent(args[0])
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if !found {
		return usage.NotFound("event", args[0])
	}

	if flags.Has("--json") {
		data, err := json.MarshalIndent(e, "", "  ")
		if err != nil {
			return fmt.Errorf("encode event: %w", err)
		}
		_, _ = deps.Println(string(data))
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", style.Header(e.Title))
	fmt.Fprintf(&b, "%-10s %s\n", "ID:", e.ID)
	fmt.Fprintf(&b, "%-10s %s\n", "Starts:", deps.formatTime(e.StartsAt))
	if e.Location != "" {
		fmt.Fprintf(&b, "%-10s %s\n", "Location:", e.Location)
	}
	fmt.Fprintf(&b, "%-10s %s\n", "Updated:", style.Muted(deps.formatTime(e.UpdatedAt)))
	if e.Description != "" {
		fmt.Fprintf(&b, "\n%s\n", e.Description)
	}
	_, _ = deps.Printf("%s", b.String())
	return nil
}

// Add creates an event from --title, --starts, --location and --description.
func Add(args []string, flags *dispatchers.ParsedFlags) error {
	return add(args, flags, DefaultDeps())
}

func add(_ []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	title := strings.TrimSpace(flags.String("--title", ""))
	if title == "" {
		return usage.MissingArgument("--title")
	}

	e := domain.Event{
		Title:       title,
		Location:    strings.TrimSpace(flags.String("--location", "")),
		Description: strings.TrimSpace(flags.String("--description", "")),
		StartsAt:    deps.now(),
	}
	if v, ok := flags.Lookup("--starts"); ok {
		starts, err := ParseStart(v)
		if err != nil {
			return err
		}
		e.StartsAt = starts
	}

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	if err := st.InsertEvent(&e); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	log.Info("events: added %s %q", e.ID, e.Title)
	_, _ = deps.Printf("%s Added event %s\n", style.Success("✓"), style.Info(e.ID))
	return nil
}

// Update changes the fields given as flags; others keep their value.
func Update(args []string, flags *dispatchers.ParsedFlags) error {
	return update(args, flags, DefaultDeps())
}

func update(args []string, flags *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return usage.MissingArgument("id")
	}

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	e, found, err := st.GetEvent(args[0])
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if !found {
		return usage.NotFound("event", args[0])
	}

	changed := false
	if v, ok := flags.Lookup("--title"); ok {
		v = strings.TrimSpace(v)
		if v == "" {
			return usage.InvalidValue("--title", v, "title cannot be empty")
		}
		e.Title = v
		changed = true
	}
	if v, ok := flags.Lookup("--location"); ok {
		e.Location = strings.TrimSpace(v)
		changed = true
	}
	if v, ok := flags.Lookup("--description"); ok {
		e.Description = strings.TrimSpace(v)
		changed = true
	}
	if v, ok := flags.Lookup("--starts"); ok {
		starts, err := ParseStart(v)
		if err != nil {
			return err
		}
		e.StartsAt = starts
		changed = true
	}

	if !changed {
		_, _ = deps.Println(style.Muted("Nothing to update"))
		return nil
	}

	if err := st.UpdateEvent(e); err != nil {
		return fmt.Errorf("update event: %w", err)
	}

	log.Info("events: updated %s", e.ID)
	_, _ = deps.Printf("%s Updated event %s\n", style.Success("✓"), style.Info(e.ID))
	return nil
}

// Delete removes an event.
func Delete(args []string, flags *dispatchers.ParsedFlags) error {
	return remove(args, flags, DefaultDeps())
}

func remove(args []string, _ *dispatchers.ParsedFlags, deps Deps) error {
	if len(args) == 0 {
		return usage.MissingArgument("id")
	}

	st, err := deps.OpenStore()
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	e, found, err := st.GetEvent(args[0])
	if err != nil {
		return fmt.Errorf("get event: %w", err)
	}
	if !found {
		return usage.NotFound("event", args[0])
	}

	if err := st.DeleteEvent(e); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	log.Info("events: deleted %s", e.ID)
	_, _ = deps.Printf("%s Deleted event %s %s\n", style.Success("✓"), e.ID, style.Muted(format.Truncate(e.Title, 40)))
	return nil
}
