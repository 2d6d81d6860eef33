package operation

import (
	"github.com/google/uuid"
	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/request"
	"github.com/saltmail/ews/search"
)

// FindFolder is the request body for a folder search.
type FindFolder struct {
	requestID string
	version   request.Version
	view      View

	Traversal       search.FolderTraversal
	ParentFolderIDs []string
}

// NewFindFolder returns a FindFolder targeting the given protocol
// version, searching with shallow traversal.
func NewFindFolder(version request.Version, view View) *FindFolder {
	return &FindFolder{
		requestID: uuid.NewString(),
		version:   version,
		view:      view,
		Traversal: search.FolderTraversalShallow,
	}
}

// RequestID returns the client-side correlation ID for this attempt.
func (r *FindFolder) RequestID() string {
	return r.requestID
}

// Version returns the protocol version the request targets.
func (r *FindFolder) Version() request.Version {
	return r.version
}

// Validate checks the request and its view before serialization.
func (r *FindFolder) Validate() error {
	if !r.version.IsValid() {
		return request.ValidationError{Reason: "request has no protocol version"}
	}
	if r.view == nil {
		return request.ValidationError{Reason: "find folder request has no view"}
	}
	if !r.Traversal.IsValid() {
		return request.ValidationError{Reason: "unknown folder traversal"}
	}
	if len(r.ParentFolderIDs) == 0 {
		return request.ValidationError{Reason: "find folder request has no parent folders"}
	}
	return r.view.Validate(r)
}

// WriteBodyToXml validates the request and writes the FindFolder
// element. Nothing is written when validation fails. Folder searches
// have no grouping clause.
func (r *FindFolder) WriteBodyToXml(w *ewsxml.Writer) error {
	if err := r.Validate(); err != nil {
		return err
	}
	return w.Element(ewsxml.NamespaceMessages, "FindFolder", func() error {
		if err := w.WriteNamespaceAttribute(ewsxml.NamespaceMessages); err != nil {
			return err
		}
		if err := w.WriteNamespaceAttribute(ewsxml.NamespaceTypes); err != nil {
			return err
		}
		if err := w.WriteAttributeValue("Traversal", r.Traversal.String()); err != nil {
			return err
		}
		if err := r.view.WriteToXml(w, nil); err != nil {
			return err
		}
		return writeFolderIDs(w, r.ParentFolderIDs)
	})
}
