package search

import "github.com/saltmail/ews/object"

// ItemView is the paged view used by item searches.
type ItemView struct {
	View
	pagedView
}

// NewItemView returns an item view returning at most pageSize results,
// starting at the beginning of the result set.
func NewItemView(pageSize int32) *ItemView {
	v := &ItemView{
		pagedView: pagedView{pageSize: pageSize, basePoint: OffsetBasePointBeginning},
	}
	v.View = NewView(v)
	return v
}

// ViewXmlElementName returns the wrapping element name.
func (v *ItemView) ViewXmlElementName() string {
	return "IndexedPageItemView"
}

// ServiceObjectType returns the kind of object this view targets.
func (v *ItemView) ServiceObjectType() object.Type {
	return object.TypeItem
}
