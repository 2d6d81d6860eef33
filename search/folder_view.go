package search

import "github.com/saltmail/ews/object"

// FolderView is the paged view used by folder searches.
type FolderView struct {
	View
	pagedView
}

// NewFolderView returns a folder view returning at most pageSize
// results, starting at the beginning of the result set.
func NewFolderView(pageSize int32) *FolderView {
	v := &FolderView{
		pagedView: pagedView{pageSize: pageSize, basePoint: OffsetBasePointBeginning},
	}
	v.View = NewView(v)
	return v
}

// ViewXmlElementName returns the wrapping element name.
func (v *FolderView) ViewXmlElementName() string {
	return "IndexedPageFolderView"
}

// ServiceObjectType returns the kind of object this view targets.
func (v *FolderView) ServiceObjectType() object.Type {
	return object.TypeFolder
}
