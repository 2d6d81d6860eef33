package search

import (
	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/object"
	"github.com/saltmail/ews/property"
	"github.com/saltmail/ews/request"
)

// Variant supplies the pieces of a search view that differ per view
// kind. A concrete view type embeds View and registers itself as the
// variant, so the shared core drives serialization while the variant
// decides element name, limits, and settings.
type Variant interface {
	// WriteSearchSettingsToXml emits the variant's search parameters
	// (grouping, sort order) after the view's wrapping element.
	WriteSearchSettingsToXml(w *ewsxml.Writer, groupBy *Grouping) error

	// WriteOrderByToXml emits the variant's sort clause, if any.
	WriteOrderByToXml(w *ewsxml.Writer) error

	// ViewXmlElementName is the element wrapping the view's attributes.
	ViewXmlElementName() string

	// MaxEntriesReturned returns the result-count cap. ok is false for
	// unbounded views; the attribute is then omitted entirely.
	MaxEntriesReturned() (n int32, ok bool)

	// ServiceObjectType is the kind of object the search targets. It
	// selects which shape block the property set is written as.
	ServiceObjectType() object.Type

	// WriteAttributesToXml emits variant-specific attributes onto the
	// view's own wrapping element.
	WriteAttributesToXml(w *ewsxml.Writer) error
}

// View is the shared core of every search view: the optional property
// set plus the validate-then-serialize contract. Validity is not cached
// and no ordering is enforced here; the request pipeline is responsible
// for calling Validate before WriteToXml.
type View struct {
	propertySet *property.Set
	variant     Variant
}

// NewView returns a view core bound to the given variant.
func NewView(variant Variant) View {
	return View{variant: variant}
}

// PropertySet returns the configured property set, or nil when the view
// falls back to the first-class default at serialization time.
func (v *View) PropertySet() *property.Set {
	return v.propertySet
}

// SetPropertySet configures which fields the server should populate on
// found objects. Passing nil reverts to the first-class default.
func (v *View) SetPropertySet(s *property.Set) {
	v.propertySet = s
}

// PropertySetOrDefault resolves the effective property set.
func (v *View) PropertySetOrDefault() *property.Set {
	if v.propertySet == nil {
		return property.FirstClass()
	}
	return v.propertySet
}

// Validate checks the view against the request that will carry it. A
// view with no configured property set is always valid; a configured set
// must be internally consistent and compatible with the request in
// summary-properties-only mode.
func (v *View) Validate(req request.Request) error {
	if v.propertySet == nil {
		return nil
	}
	if err := v.propertySet.Validate(); err != nil {
		return err
	}
	return v.propertySet.ValidateForRequest(req, true)
}

// WriteToXml writes the view into the request body: the effective
// property set first, then the wrapping element with its attributes,
// then the variant's search settings as siblings after the closing tag.
// The wrapping element is closed on every exit path, so the writer's
// element stack stays balanced even when a nested write fails.
func (v *View) WriteToXml(w *ewsxml.Writer, groupBy *Grouping) error {
	if err := v.PropertySetOrDefault().WriteToXml(w, v.variant.ServiceObjectType()); err != nil {
		return err
	}
	err := w.Element(ewsxml.NamespaceMessages, v.variant.ViewXmlElementName(), func() error {
		if n, ok := v.variant.MaxEntriesReturned(); ok {
			if err := w.WriteAttributeValue("MaxEntriesReturned", n); err != nil {
				return err
			}
		}
		return v.variant.WriteAttributesToXml(w)
	})
	if err != nil {
		return err
	}
	return v.variant.WriteSearchSettingsToXml(w, groupBy)
}
