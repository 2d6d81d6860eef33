package search

import (
	"time"

	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/object"
)

// CalendarView is a date-windowed, unpaged view over calendar items.
// The server expands recurrences inside the window, so the view carries
// no offset and no sort clause; results come back in start-date order.
type CalendarView struct {
	View
	startDate          time.Time
	endDate            time.Time
	maxEntriesReturned *int32
}

// NewCalendarView returns an unbounded calendar view over [start, end).
func NewCalendarView(start, end time.Time) *CalendarView {
	v := &CalendarView{startDate: start, endDate: end}
	v.View = NewView(v)
	return v
}

// StartDate returns the beginning of the date window.
func (v *CalendarView) StartDate() time.Time {
	return v.startDate
}

// EndDate returns the end of the date window.
func (v *CalendarView) EndDate() time.Time {
	return v.endDate
}

// MaxEntriesReturned reports the configured cap. ok is false while the
// view is unbounded.
func (v *CalendarView) MaxEntriesReturned() (int32, bool) {
	if v.maxEntriesReturned == nil {
		return 0, false
	}
	return *v.maxEntriesReturned, true
}

// SetMaxEntriesReturned caps the number of returned calendar items.
func (v *CalendarView) SetMaxEntriesReturned(n int32) {
	v.maxEntriesReturned = &n
}

// ClearMaxEntriesReturned makes the view unbounded again.
func (v *CalendarView) ClearMaxEntriesReturned() {
	v.maxEntriesReturned = nil
}

// ViewXmlElementName returns the wrapping element name.
func (v *CalendarView) ViewXmlElementName() string {
	return "CalendarView"
}

// ServiceObjectType returns the kind of object this view targets.
// Calendar items are items, so the property set is written as an item
// shape.
func (v *CalendarView) ServiceObjectType() object.Type {
	return object.TypeItem
}

// WriteAttributesToXml writes the date window onto the wrapping element.
func (v *CalendarView) WriteAttributesToXml(w *ewsxml.Writer) error {
	if err := w.WriteAttributeValue("StartDate", v.startDate); err != nil {
		return err
	}
	return w.WriteAttributeValue("EndDate", v.endDate)
}

// WriteOrderByToXml writes nothing; calendar views have no sort clause.
func (v *CalendarView) WriteOrderByToXml(w *ewsxml.Writer) error {
	return nil
}

// WriteSearchSettingsToXml writes nothing. Calendar views do not
// support grouping; a supplied clause is ignored, matching the wire
// protocol.
func (v *CalendarView) WriteSearchSettingsToXml(w *ewsxml.Writer, groupBy *Grouping) error {
	return nil
}
