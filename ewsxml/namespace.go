package ewsxml

const (
	NamespaceMessages Namespace = "messages"
	NamespaceTypes    Namespace = "types"
)

// Namespace identifies one of the XML namespaces used by the protocol.
type Namespace string

// String cast Namespace to string
func (ns Namespace) String() string {
	return string(ns)
}

// IsValid will validate whether the namespace is known or not
func (ns Namespace) IsValid() bool {
	switch ns {
	case NamespaceMessages, NamespaceTypes:
		return true
	}
	return false
}

// Prefix returns the prefix elements in this namespace are qualified with
func (ns Namespace) Prefix() string {
	switch ns {
	case NamespaceMessages:
		return "m"
	case NamespaceTypes:
		return "t"
	}
	return ""
}

// URI returns the namespace URI declared for this namespace
func (ns Namespace) URI() string {
	switch ns {
	case NamespaceMessages:
		return "http://schemas.microsoft.com/exchange/services/2006/messages"
	case NamespaceTypes:
		return "http://schemas.microsoft.com/exchange/services/2006/types"
	}
	return ""
}
