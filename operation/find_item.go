package operation

import (
	"github.com/google/uuid"
	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/request"
	"github.com/saltmail/ews/search"
)

// FindItem is the request body for an item search. It carries a view
// (item, conversation, or calendar), an optional grouping clause, and
// the folders to search in.
type FindItem struct {
	requestID string
	version   request.Version
	view      View

	Traversal       search.ItemTraversal
	GroupBy         *search.Grouping
	ParentFolderIDs []string
}

// NewFindItem returns a FindItem targeting the given protocol version,
// searching with shallow traversal.
func NewFindItem(version request.Version, view View) *FindItem {
	return &FindItem{
		requestID: uuid.NewString(),
		version:   version,
		view:      view,
		Traversal: search.ItemTraversalShallow,
	}
}

// RequestID returns the client-side correlation ID for this attempt.
func (r *FindItem) RequestID() string {
	return r.requestID
}

// Version returns the protocol version the request targets.
func (r *FindItem) Version() request.Version {
	return r.version
}

// Validate checks the request and its view before serialization.
func (r *FindItem) Validate() error {
	if !r.version.IsValid() {
		return request.ValidationError{Reason: "request has no protocol version"}
	}
	if r.view == nil {
		return request.ValidationError{Reason: "find item request has no view"}
	}
	if !r.Traversal.IsValid() {
		return request.ValidationError{Reason: "unknown item traversal"}
	}
	if len(r.ParentFolderIDs) == 0 {
		return request.ValidationError{Reason: "find item request has no parent folders"}
	}
	return r.view.Validate(r)
}

// WriteBodyToXml validates the request and writes the FindItem element.
// Nothing is written when validation fails.
func (r *FindItem) WriteBodyToXml(w *ewsxml.Writer) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return w.Element(ewsxml.NamespaceMessages, "FindItem", func() error {
		if err := w.WriteNamespaceAttribute(ewsxml.NamespaceMessages); err != nil {
			return err
		}
		if err := w.WriteNamespaceAttribute(ewsxml.NamespaceTypes); err != nil {
			return err
		}
		if err := w.WriteAttributeValue("Traversal", r.Traversal.String()); err != nil {
			return err
		}
		if err := r.view.WriteToXml(w, r.GroupBy); err != nil {
			return err
		}
		return writeFolderIDs(w, r.ParentFolderIDs)
	})
}
