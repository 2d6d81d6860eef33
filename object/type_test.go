package object

import "testing"

func TestTypeString(t *testing.T) {
	stringVal := TypeItem.String()
	if stringVal != "item" {
		t.Fatalf("type item converted to %s instead of 'item'", stringVal)
	}
	stringVal = TypeFolder.String()
	if stringVal != "folder" {
		t.Fatalf("type folder converted to %s instead of 'folder'", stringVal)
	}
	stringVal = TypeConversation.String()
	if stringVal != "conversation" {
		t.Fatalf("type conversation converted to %s instead of 'conversation'", stringVal)
	}
}

func TestTypeIsValid(t *testing.T) {
	for _, aType := range AllSupportedTypes {
		if !aType.IsValid() {
			t.Fatalf("type %s is not valid", aType)
		}
	}

	aType := Type("random")
	if aType.IsValid() {
		t.Fatalf("type %s should not be valid", aType)
	}
}
