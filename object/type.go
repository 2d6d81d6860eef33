package object

const (
	TypeItem         Type = "item"
	TypeFolder       Type = "folder"
	TypeConversation Type = "conversation"
)

// AllSupportedTypes holds a list of all supported service object types
var AllSupportedTypes = []Type{
	TypeItem,
	TypeFolder,
	TypeConversation,
}

// Type specifies the kind of service object a search targets
type Type string

// String cast Type to string
func (t Type) String() string {
	return string(t)
}

// IsValid will validate whether the type is supported or not
func (t Type) IsValid() bool {
	switch t {
	case TypeItem, TypeFolder, TypeConversation:
		return true
	}
	return false
}
