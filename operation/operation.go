package operation

import (
	"github.com/saltmail/ews/ewsxml"
	"github.com/saltmail/ews/request"
	"github.com/saltmail/ews/search"
)

// View is the part of a search view an operation drives: validation
// against the carrying request, then serialization into the body.
type View interface {
	Validate(req request.Request) error
	WriteToXml(w *ewsxml.Writer, groupBy *search.Grouping) error
}

func writeFolderIDs(w *ewsxml.Writer, ids []string) error {
	return w.Element(ewsxml.NamespaceMessages, "ParentFolderIds", func() error {
		for _, id := range ids {
			err := w.Element(ewsxml.NamespaceTypes, "FolderId", func() error {
				return w.WriteAttributeValue("Id", id)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
