package property

import (
	"fmt"

	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/object"
	"github.com/saltmail/ews/request"
)

const (
	BaseShapeIDOnly        BaseShape = "IdOnly"
	BaseShapeDefault       BaseShape = "Default"
	BaseShapeAllProperties BaseShape = "AllProperties"
)

// BaseShape specifies which predefined group of fields a Set starts from
type BaseShape string

// String cast BaseShape to string
func (b BaseShape) String() string {
	return string(b)
}

// IsValid will validate whether the base shape is supported or not
func (b BaseShape) IsValid() bool {
	switch b {
	case BaseShapeIDOnly, BaseShapeDefault, BaseShapeAllProperties:
		return true
	}
	return false
}

// Set is a named selection of fields the server should populate on
// returned objects: a base shape plus optional additional definitions.
type Set struct {
	baseShape  BaseShape
	additional []Definition
}

// NewSet returns a Set with the given base shape and additional fields.
func NewSet(baseShape BaseShape, additional ...Definition) *Set {
	s := &Set{baseShape: baseShape}
	s.additional = append(s.additional, additional...)
	return s
}

// firstClass is the process-wide default applied when a view has no
// configured set. It is shared and must never be mutated.
var firstClass = &Set{baseShape: BaseShapeAllProperties}

// FirstClass returns the shared "all first-class properties" default Set.
func FirstClass() *Set {
	return firstClass
}

// BaseShape returns the set's base shape.
func (s *Set) BaseShape() BaseShape {
	return s.baseShape
}

// Additional returns the additional field definitions in request order.
func (s *Set) Additional() []Definition {
	return s.additional
}

// Add appends additional field definitions to the set.
func (s *Set) Add(defs ...Definition) {
	s.additional = append(s.additional, defs...)
}

// Validate checks the set for internal consistency, independent of any
// request: a known base shape, non-empty field URIs, no duplicates.
func (s *Set) Validate() error {
	if !s.baseShape.IsValid() {
		return request.ValidationError{Reason: fmt.Sprintf("unknown base shape %q", s.baseShape)}
	}
	seen := map[string]bool{}
	for _, d := range s.additional {
		if d.FieldURI == "" {
			return request.ValidationError{Reason: "property with empty field URI"}
		}
		if seen[d.FieldURI] {
			return request.ValidationError{Reason: fmt.Sprintf("property %s requested twice", d.FieldURI)}
		}
		seen[d.FieldURI] = true
	}
	return nil
}

// ValidateForRequest checks the set against the request it will be sent
// with. Every field must exist in the request's protocol version, and in
// summary-properties-only mode every field must be summary safe.
func (s *Set) ValidateForRequest(req request.Request, summaryPropertiesOnly bool) error {
	for _, d := range s.additional {
		if !req.Version().AtLeast(d.MinVersion) {
			return request.VersionError{
				Feature:  d.FieldURI,
				Required: d.MinVersion,
				Actual:   req.Version(),
			}
		}
		if summaryPropertiesOnly && !d.SummarySafe {
			return request.ValidationError{
				Reason: fmt.Sprintf("property %s cannot be requested in summary results", d.FieldURI),
			}
		}
	}
	return nil
}

// WriteToXml writes the set as the shape block for the given service
// object type.
func (s *Set) WriteToXml(w *ewsxml.Writer, objectType object.Type) error {
	return w.Element(ewsxml.NamespaceMessages, shapeElementName(objectType), func() error {
		if err := w.WriteElementValue(ewsxml.NamespaceTypes, "BaseShape", s.baseShape.String()); err != nil {
			return err
		}
		if len(s.additional) == 0 {
			return nil
		}
		return w.Element(ewsxml.NamespaceTypes, "AdditionalProperties", func() error {
			for _, d := range s.additional {
				err := w.Element(ewsxml.NamespaceTypes, "FieldURI", func() error {
					return w.WriteAttributeValue("FieldURI", d.FieldURI)
				})
				if err != nil {
					return err
				}
			}
			return nil
		})
	})
}

func shapeElementName(objectType object.Type) string {
	if objectType == object.TypeFolder {
		return "FolderShape"
	}
	return "ItemShape"
}
