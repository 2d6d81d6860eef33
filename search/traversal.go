package search

const (
	ItemTraversalShallow     ItemTraversal = "Shallow"
	ItemTraversalSoftDeleted ItemTraversal = "SoftDeleted"
	ItemTraversalAssociated  ItemTraversal = "Associated"
)

// ItemTraversal specifies how an item search walks the target folder
type ItemTraversal string

// String cast ItemTraversal to string
func (t ItemTraversal) String() string {
	return string(t)
}

// IsValid will validate whether the traversal is supported or not
func (t ItemTraversal) IsValid() bool {
	switch t {
	case ItemTraversalShallow, ItemTraversalSoftDeleted, ItemTraversalAssociated:
		return true
	}
	return false
}

const (
	FolderTraversalShallow     FolderTraversal = "Shallow"
	FolderTraversalDeep        FolderTraversal = "Deep"
	FolderTraversalSoftDeleted FolderTraversal = "SoftDeleted"
)

// FolderTraversal specifies how a folder search walks the hierarchy
type FolderTraversal string

// String cast FolderTraversal to string
func (t FolderTraversal) String() string {
	return string(t)
}

// IsValid will validate whether the traversal is supported or not
func (t FolderTraversal) IsValid() bool {
	switch t {
	case FolderTraversalShallow, FolderTraversalDeep, FolderTraversalSoftDeleted:
		return true
	}
	return false
}
