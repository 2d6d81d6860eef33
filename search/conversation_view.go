package search

import "github.com/saltmail/ews/object"

// ConversationIndexedItemView is the paged view used by conversation
// searches. It shares the indexed-page wrapping element with item views
// but targets conversation objects.
type ConversationIndexedItemView struct {
	View
	pagedView
}

// NewConversationIndexedItemView returns a conversation view returning
// at most pageSize results, starting at the beginning of the result set.
func NewConversationIndexedItemView(pageSize int32) *ConversationIndexedItemView {
	v := &ConversationIndexedItemView{
		pagedView: pagedView{pageSize: pageSize, basePoint: OffsetBasePointBeginning},
	}
	v.View = NewView(v)
	return v
}

// ViewXmlElementName returns the wrapping element name.
func (v *ConversationIndexedItemView) ViewXmlElementName() string {
	return "IndexedPageItemView"
}

// ServiceObjectType returns the kind of object this view targets.
func (v *ConversationIndexedItemView) ServiceObjectType() object.Type {
	return object.TypeConversation
}
