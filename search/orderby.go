package search

import (
	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/property"
)

const (
	SortAscending  SortDirection = "Ascending"
	SortDescending SortDirection = "Descending"
)

// SortDirection specifies the direction of a sort or grouping clause
type SortDirection string

// String cast SortDirection to string
func (d SortDirection) String() string {
	return string(d)
}

// IsValid will validate whether the direction is supported or not
func (d SortDirection) IsValid() bool {
	switch d {
	case SortAscending, SortDescending:
		return true
	}
	return false
}

// FieldOrder pairs a field with the direction it is sorted in.
type FieldOrder struct {
	Field     property.Definition
	Direction SortDirection
}

// OrderBy is an ordered list of sort clauses. The zero value is an empty
// clause and serializes to nothing.
type OrderBy struct {
	fieldOrders []FieldOrder
}

// Add appends a sort clause.
func (o *OrderBy) Add(field property.Definition, direction SortDirection) {
	o.fieldOrders = append(o.fieldOrders, FieldOrder{Field: field, Direction: direction})
}

// Len returns the number of sort clauses.
func (o *OrderBy) Len() int {
	return len(o.fieldOrders)
}

// WriteToXml writes the sort clause block. An empty clause writes
// nothing at all, not an empty element.
func (o *OrderBy) WriteToXml(w *ewsxml.Writer) error {
	if len(o.fieldOrders) == 0 {
		return nil
	}
	return w.Element(ewsxml.NamespaceMessages, "SortOrder", func() error {
		for _, fo := range o.fieldOrders {
			err := w.Element(ewsxml.NamespaceTypes, "FieldOrder", func() error {
				if err := w.WriteAttributeValue("Order", fo.Direction.String()); err != nil {
					return err
				}
				return w.Element(ewsxml.NamespaceTypes, "FieldURI", func() error {
					return w.WriteAttributeValue("FieldURI", fo.Field.FieldURI)
				})
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
