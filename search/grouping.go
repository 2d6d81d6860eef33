package search

import (
	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/property"
)

const (
	AggregateMinimum AggregateType = "Minimum"
	AggregateMaximum AggregateType = "Maximum"
)

// AggregateType specifies which member represents a server-side group
type AggregateType string

// String cast AggregateType to string
func (a AggregateType) String() string {
	return string(a)
}

// IsValid will validate whether the aggregate type is supported or not
func (a AggregateType) IsValid() bool {
	switch a {
	case AggregateMinimum, AggregateMaximum:
		return true
	}
	return false
}

// Grouping specifies how search results are grouped server-side: the
// field to group on, the order of the groups, and the field and
// aggregate deciding each group's representative.
type Grouping struct {
	SortDirection SortDirection
	GroupOn       property.Definition
	AggregateOn   property.Definition
	AggregateType AggregateType
}

// NewGrouping returns a grouping clause over groupOn, represented by the
// aggregate of aggregateOn.
func NewGrouping(groupOn property.Definition, direction SortDirection,
	aggregateOn property.Definition, aggregateType AggregateType) *Grouping {
	return &Grouping{
		SortDirection: direction,
		GroupOn:       groupOn,
		AggregateOn:   aggregateOn,
		AggregateType: aggregateType,
	}
}

// WriteToXml writes the group-by block.
func (g *Grouping) WriteToXml(w *ewsxml.Writer) error {
	return w.Element(ewsxml.NamespaceMessages, "GroupBy", func() error {
		if err := w.WriteAttributeValue("Order", g.SortDirection.String()); err != nil {
			return err
		}
		err := w.Element(ewsxml.NamespaceTypes, "FieldURI", func() error {
			return w.WriteAttributeValue("FieldURI", g.GroupOn.FieldURI)
		})
		if err != nil {
			return err
		}
		return w.Element(ewsxml.NamespaceTypes, "AggregateOn", func() error {
			if err := w.WriteAttributeValue("Aggregate", g.AggregateType.String()); err != nil {
				return err
			}
			return w.Element(ewsxml.NamespaceTypes, "FieldURI", func() error {
				return w.WriteAttributeValue("FieldURI", g.AggregateOn.FieldURI)
			})
		})
	})
}
