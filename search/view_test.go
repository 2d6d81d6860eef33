package search_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/object"
	"github.com/saltmail/ews/property"
	"github.com/saltmail/ews/request"
	"github.com/saltmail/ews/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRequest struct {
	version request.Version
}

func (r stubRequest) Version() request.Version {
	return r.version
}

const defaultItemShape = `<m:ItemShape><t:BaseShape>AllProperties</t:BaseShape></m:ItemShape>`

func renderView(t *testing.T, view interface {
	WriteToXml(*ewsxml.Writer, *search.Grouping) error
}, groupBy *search.Grouping) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, view.WriteToXml(ewsxml.NewWriter(&buf), groupBy))
	return buf.String()
}

func TestViewValidate(t *testing.T) {
	req := stubRequest{version: request.VersionExchange2013SP1}

	t.Run("should never fail without a configured property set", func(t *testing.T) {
		view := search.NewItemView(50)
		assert.Nil(t, view.PropertySet())
		assert.NoError(t, view.Validate(req))
	})

	t.Run("should fail when the set is internally inconsistent", func(t *testing.T) {
		view := search.NewItemView(50)
		view.SetPropertySet(property.NewSet(property.BaseShapeIDOnly, property.ItemSubject, property.ItemSubject))

		var verr request.ValidationError
		assert.ErrorAs(t, view.Validate(req), &verr)
	})

	t.Run("should fail when the set is not summary safe", func(t *testing.T) {
		view := search.NewItemView(50)
		view.SetPropertySet(property.NewSet(property.BaseShapeIDOnly, property.ItemBody))

		var verr request.ValidationError
		assert.ErrorAs(t, view.Validate(req), &verr)
	})

	t.Run("should surface version errors unchanged", func(t *testing.T) {
		view := search.NewItemView(50)
		view.SetPropertySet(property.NewSet(property.BaseShapeIDOnly, property.ItemPreview))

		var verr request.VersionError
		assert.ErrorAs(t, view.Validate(stubRequest{version: request.VersionExchange2010}), &verr)
	})

	t.Run("should pass a compatible configured set", func(t *testing.T) {
		view := search.NewItemView(50)
		view.SetPropertySet(property.NewSet(property.BaseShapeIDOnly, property.ItemSubject))
		assert.NoError(t, view.Validate(req))
	})
}

func TestViewWriteToXml(t *testing.T) {
	t.Run("should write the default property set before the wrapping element", func(t *testing.T) {
		got := renderView(t, search.NewItemView(50), nil)

		expected := defaultItemShape +
			`<m:IndexedPageItemView MaxEntriesReturned="50" Offset="0" BasePoint="Beginning"/>`
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should write the configured property set when present", func(t *testing.T) {
		view := search.NewItemView(25)
		view.SetPropertySet(property.NewSet(property.BaseShapeIDOnly, property.ItemSubject))

		got := renderView(t, view, nil)
		expected := `<m:ItemShape>` +
			`<t:BaseShape>IdOnly</t:BaseShape>` +
			`<t:AdditionalProperties><t:FieldURI FieldURI="item:Subject"/></t:AdditionalProperties>` +
			`</m:ItemShape>` +
			`<m:IndexedPageItemView MaxEntriesReturned="25" Offset="0" BasePoint="Beginning"/>`
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should omit MaxEntriesReturned for unbounded views", func(t *testing.T) {
		view := search.NewCalendarView(
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		)

		got := renderView(t, view, nil)
		expected := defaultItemShape +
			`<m:CalendarView StartDate="2026-08-01T00:00:00Z" EndDate="2026-09-01T00:00:00Z"/>`
		assert.Equal(t, expected, got)
		assert.NotContains(t, got, "MaxEntriesReturned")
	})

	t.Run("should write MaxEntriesReturned once a calendar view is capped", func(t *testing.T) {
		view := search.NewCalendarView(
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		)
		view.SetMaxEntriesReturned(100)

		got := renderView(t, view, nil)
		assert.Contains(t, got, `<m:CalendarView MaxEntriesReturned="100" StartDate=`)

		view.ClearMaxEntriesReturned()
		assert.NotContains(t, renderView(t, view, nil), "MaxEntriesReturned")
	})

	t.Run("should write search settings after the wrapping element closes", func(t *testing.T) {
		view := search.NewItemView(50)
		view.OrderBy().Add(property.ItemDateTimeReceived, search.SortDescending)
		groupBy := search.NewGrouping(property.ItemSubject, search.SortAscending,
			property.ItemDateTimeReceived, search.AggregateMaximum)

		got := renderView(t, view, groupBy)

		viewEnd := strings.Index(got, `BasePoint="Beginning"/>`)
		groupStart := strings.Index(got, `<m:GroupBy`)
		sortStart := strings.Index(got, `<m:SortOrder`)
		require.True(t, viewEnd >= 0 && groupStart >= 0 && sortStart >= 0, "output: %s", got)
		assert.Less(t, viewEnd, groupStart, "grouping must be a sibling after the view element")
		assert.Less(t, groupStart, sortStart, "sort order must follow grouping")
	})

	t.Run("should serialize the full item scenario", func(t *testing.T) {
		view := search.NewItemView(50)
		view.SetOffset(10)
		view.SetBasePoint(search.OffsetBasePointEnd)
		view.SetPropertySet(property.NewSet(property.BaseShapeIDOnly, property.ItemSubject))
		view.OrderBy().Add(property.ItemDateTimeReceived, search.SortDescending)
		groupBy := search.NewGrouping(property.ItemSubject, search.SortAscending,
			property.ItemDateTimeReceived, search.AggregateMaximum)

		got := renderView(t, view, groupBy)
		expected := `<m:ItemShape>` +
			`<t:BaseShape>IdOnly</t:BaseShape>` +
			`<t:AdditionalProperties><t:FieldURI FieldURI="item:Subject"/></t:AdditionalProperties>` +
			`</m:ItemShape>` +
			`<m:IndexedPageItemView MaxEntriesReturned="50" Offset="10" BasePoint="End"/>` +
			`<m:GroupBy Order="Ascending">` +
			`<t:FieldURI FieldURI="item:Subject"/>` +
			`<t:AggregateOn Aggregate="Maximum"><t:FieldURI FieldURI="item:DateTimeReceived"/></t:AggregateOn>` +
			`</m:GroupBy>` +
			`<m:SortOrder>` +
			`<t:FieldOrder Order="Descending"><t:FieldURI FieldURI="item:DateTimeReceived"/></t:FieldOrder>` +
			`</m:SortOrder>`
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Errorf("output mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("should produce identical output across repeated serialization", func(t *testing.T) {
		view := search.NewItemView(50)
		view.SetOffset(5)
		view.OrderBy().Add(property.ItemSubject, search.SortAscending)

		first := renderView(t, view, nil)
		second := renderView(t, view, nil)
		assert.Equal(t, first, second)
	})
}

func TestFolderViewWriteToXml(t *testing.T) {
	view := search.NewFolderView(10)
	got := renderView(t, view, nil)

	expected := `<m:FolderShape><t:BaseShape>AllProperties</t:BaseShape></m:FolderShape>` +
		`<m:IndexedPageFolderView MaxEntriesReturned="10" Offset="0" BasePoint="Beginning"/>`
	assert.Equal(t, expected, got)
	assert.Equal(t, object.TypeFolder, view.ServiceObjectType())
}

func TestConversationViewWriteToXml(t *testing.T) {
	view := search.NewConversationIndexedItemView(20)
	got := renderView(t, view, nil)

	// conversations share the item shape and indexed-page element
	expected := defaultItemShape +
		`<m:IndexedPageItemView MaxEntriesReturned="20" Offset="0" BasePoint="Beginning"/>`
	assert.Equal(t, expected, got)
	assert.Equal(t, object.TypeConversation, view.ServiceObjectType())
}

// brokenVariant fails while its wrapping element is open.
type brokenVariant struct {
	search.View
}

func newBrokenVariant() *brokenVariant {
	v := &brokenVariant{}
	v.View = search.NewView(v)
	return v
}

func (v *brokenVariant) WriteSearchSettingsToXml(w *ewsxml.Writer, groupBy *search.Grouping) error {
	return nil
}

func (v *brokenVariant) WriteOrderByToXml(w *ewsxml.Writer) error {
	return nil
}

func (v *brokenVariant) ViewXmlElementName() string {
	return "BrokenView"
}

func (v *brokenVariant) MaxEntriesReturned() (int32, bool) {
	return 0, false
}

func (v *brokenVariant) ServiceObjectType() object.Type {
	return object.TypeItem
}

func (v *brokenVariant) WriteAttributesToXml(w *ewsxml.Writer) error {
	return errors.New("attribute write failed")
}

func TestViewWriteToXmlBalancedOnError(t *testing.T) {
	view := newBrokenVariant()

	var buf bytes.Buffer
	w := ewsxml.NewWriter(&buf)
	err := view.WriteToXml(w, nil)

	assert.Error(t, err)
	assert.Zero(t, w.Depth(), "wrapping element must be closed on the error path")
}
