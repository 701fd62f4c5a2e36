// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/MKhiriev/go-selection-sync/internal/collection"
	"github.com/MKhiriev/go-selection-sync/internal/selection"
	"github.com/MKhiriev/go-selection-sync/internal/utils"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// CalendarSelectionMode limits which dates a Calendar accepts.
type CalendarSelectionMode int

const (
	// CalendarNone accepts no dates.
	CalendarNone CalendarSelectionMode = iota
	// CalendarSingleDate accepts one date.
	CalendarSingleDate
	// CalendarSingleRange accepts one run of consecutive dates.
	CalendarSingleRange
	// CalendarMultipleRange accepts any set of dates.
	CalendarMultipleRange
)

var calendarModeNames = map[CalendarSelectionMode]string{
	CalendarNone:          "none",
	CalendarSingleDate:    "single-date",
	CalendarSingleRange:   "single-range",
	CalendarMultipleRange: "multiple-range",
}

func (m CalendarSelectionMode) String() string {
	if name, ok := calendarModeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("CalendarSelectionMode(%d)", int(m))
}

// ParseCalendarSelectionMode is the inverse of CalendarSelectionMode.String.
func ParseCalendarSelectionMode(s string) (CalendarSelectionMode, error) {
	for mode, name := range calendarModeNames {
		if name == s {
			return mode, nil
		}
	}
	return CalendarNone, fmt.Errorf("unknown calendar selection mode %q", s)
}

var calendarIDs = utils.NewUUIDGenerator("calendar")

// CalendarOption configures a Calendar.
type CalendarOption func(*Calendar)

// WithDisplayRange restricts selectable dates to [start, end]. A zero bound
// is open.
func WithDisplayRange(start, end time.Time) CalendarOption {
	return func(c *Calendar) {
		c.start = start
		c.end = end
	}
}

// WithDisplayDate sets the date the cursor starts on. Default is today.
func WithDisplayDate(d time.Time) CalendarOption {
	return func(c *Calendar) {
		c.cursor = truncateDay(d)
	}
}

// Calendar is a month view whose selected dates collection enforces the
// selection mode, the display range and date uniqueness.
type Calendar struct {
	id     string
	mode   CalendarSelectionMode
	start  time.Time
	end    time.Time
	cursor time.Time

	selected *collection.ObservableList[time.Time]
}

var _ selection.DateSelector = (*Calendar)(nil)

// NewCalendar creates a calendar with no selected dates.
func NewCalendar(mode CalendarSelectionMode, opts ...CalendarOption) *Calendar {
	c := &Calendar{
		id:     calendarIDs.Generate(),
		mode:   mode,
		cursor: truncateDay(time.Now()),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.selected = collection.NewObservableList(collection.WithFilter[time.Time](c.admits))

	return c
}

func (c *Calendar) ID() string { return c.id }

func (c *Calendar) Kind() selection.Kind { return selection.KindCalendar }

func (c *Calendar) Mode() CalendarSelectionMode { return c.mode }

func (c *Calendar) Cursor() time.Time { return c.cursor }

// SelectedDates returns the live collection of selected days.
func (c *Calendar) SelectedDates() *collection.ObservableList[time.Time] {
	return c.selected
}

// IsSelected reports whether the day of d is selected.
func (c *Calendar) IsSelected(d time.Time) bool {
	return c.indexOfDay(d) >= 0
}

// Toggle selects the day of d, or unselects it if it is selected.
func (c *Calendar) Toggle(d time.Time) error {
	if i := c.indexOfDay(d); i >= 0 {
		return c.selected.RemoveAt(i)
	}
	return c.selected.Append(truncateDay(d))
}

// SelectRange adds every day from one bound to the other, inclusive, as one
// change. Days the calendar does not accept are skipped.
func (c *Calendar) SelectRange(from, to time.Time) error {
	from, to = truncateDay(from), truncateDay(to)
	if to.Before(from) {
		from, to = to, from
	}

	var days []time.Time
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}

	return c.selected.AddRange(days...)
}

func (c *Calendar) admits(current []time.Time, d time.Time) bool {
	if c.mode == CalendarNone || !c.inRange(d) {
		return false
	}
	if slices.ContainsFunc(current, func(s time.Time) bool { return sameDay(s, d) }) {
		return false
	}

	switch c.mode {
	case CalendarSingleDate:
		return len(current) == 0
	case CalendarSingleRange:
		if len(current) == 0 {
			return true
		}
		first := slices.MinFunc(current, compareDays)
		last := slices.MaxFunc(current, compareDays)
		n := dayNumber(d)
		return n == dayNumber(first)-1 || n == dayNumber(last)+1
	default:
		return true
	}
}

func (c *Calendar) inRange(d time.Time) bool {
	n := dayNumber(d)
	if !c.start.IsZero() && n < dayNumber(c.start) {
		return false
	}
	if !c.end.IsZero() && n > dayNumber(c.end) {
		return false
	}
	return true
}

func (c *Calendar) indexOfDay(d time.Time) int {
	return slices.IndexFunc(c.selected.Items(), func(s time.Time) bool { return sameDay(s, d) })
}

// Update handles cursor movement and selection keys.
func (c *Calendar) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch {
	case key.Matches(keyMsg, keys.left):
		c.cursor = c.cursor.AddDate(0, 0, -1)
	case key.Matches(keyMsg, keys.right):
		c.cursor = c.cursor.AddDate(0, 0, 1)
	case key.Matches(keyMsg, keys.up):
		c.cursor = c.cursor.AddDate(0, 0, -7)
	case key.Matches(keyMsg, keys.down):
		c.cursor = c.cursor.AddDate(0, 0, 7)
	case key.Matches(keyMsg, keys.prevMonth):
		c.cursor = c.cursor.AddDate(0, -1, 0)
	case key.Matches(keyMsg, keys.nextMonth):
		c.cursor = c.cursor.AddDate(0, 1, 0)
	case key.Matches(keyMsg, keys.toggle):
		return errCmd(c.Toggle(c.cursor))
	case key.Matches(keyMsg, keys.week):
		monday := c.cursor.AddDate(0, 0, -weekdayOffset(c.cursor))
		return errCmd(c.SelectRange(monday, monday.AddDate(0, 0, 6)))
	}

	return nil
}

func (c *Calendar) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(c.cursor.Format("January 2006")))
	b.WriteString("\n")
	b.WriteString("Mo  Tu  We  Th  Fr  Sa  Su\n")

	first := time.Date(c.cursor.Year(), c.cursor.Month(), 1, 0, 0, 0, 0, c.cursor.Location())
	b.WriteString(strings.Repeat("    ", weekdayOffset(first)))

	for d := first; d.Month() == first.Month(); d = d.AddDate(0, 0, 1) {
		cell := fmt.Sprintf("%2d", d.Day())
		switch {
		case c.IsSelected(d):
			cell = selectedStyle.Render(cell)
		case !c.inRange(d):
			cell = disabledStyle.Render(cell)
		}
		if sameDay(d, c.cursor) {
			cell = "[" + cell + "]"
		} else {
			cell = " " + cell + " "
		}
		b.WriteString(cell)

		if weekdayOffset(d) == 6 {
			b.WriteString("\n")
		}
	}

	fmt.Fprintf(&b, "\n\nmode: %s, %d selected\n", c.mode, c.selected.Len())
	return b.String()
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func sameDay(a, b time.Time) bool {
	return dayNumber(a) == dayNumber(b)
}

// dayNumber counts civil days since the Unix epoch, ignoring time of day
// and location.
func dayNumber(t time.Time) int64 {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
}

func compareDays(a, b time.Time) int {
	return int(dayNumber(a) - dayNumber(b))
}

// weekdayOffset returns 0 for Monday through 6 for Sunday.
func weekdayOffset(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}
