package property

import "github.com/saltmail/ews/request"

// Definition describes a single requestable field: its wire URI, whether
// it is cheap enough to return in summary/paged results, and the earliest
// protocol version that knows about it.
type Definition struct {
	FieldURI    string
	SummarySafe bool
	MinVersion  request.Version
}

// Well-known field definitions. SummarySafe is false for fields the
// server refuses to return in summary mode (full bodies, raw MIME,
// attachment collections).
var (
	ItemSubject          = Definition{FieldURI: "item:Subject", SummarySafe: true, MinVersion: request.VersionExchange2007SP1}
	ItemDateTimeReceived = Definition{FieldURI: "item:DateTimeReceived", SummarySafe: true, MinVersion: request.VersionExchange2007SP1}
	ItemSize             = Definition{FieldURI: "item:Size", SummarySafe: true, MinVersion: request.VersionExchange2007SP1}
	ItemHasAttachments   = Definition{FieldURI: "item:HasAttachments", SummarySafe: true, MinVersion: request.VersionExchange2007SP1}
	ItemBody             = Definition{FieldURI: "item:Body", SummarySafe: false, MinVersion: request.VersionExchange2007SP1}
	ItemMimeContent      = Definition{FieldURI: "item:MimeContent", SummarySafe: false, MinVersion: request.VersionExchange2007SP1}
	ItemAttachments      = Definition{FieldURI: "item:Attachments", SummarySafe: false, MinVersion: request.VersionExchange2007SP1}
	ItemPreview          = Definition{FieldURI: "item:Preview", SummarySafe: true, MinVersion: request.VersionExchange2013}
	ItemTextBody         = Definition{FieldURI: "item:TextBody", SummarySafe: false, MinVersion: request.VersionExchange2013}

	FolderDisplayName = Definition{FieldURI: "folder:DisplayName", SummarySafe: true, MinVersion: request.VersionExchange2007SP1}
	FolderTotalCount  = Definition{FieldURI: "folder:TotalCount", SummarySafe: true, MinVersion: request.VersionExchange2007SP1}
	FolderUnreadCount = Definition{FieldURI: "folder:UnreadCount", SummarySafe: true, MinVersion: request.VersionExchange2007SP1}

	CalendarStart = Definition{FieldURI: "calendar:Start", SummarySafe: true, MinVersion: request.VersionExchange2007SP1}
	CalendarEnd   = Definition{FieldURI: "calendar:End", SummarySafe: true, MinVersion: request.VersionExchange2007SP1}

	ConversationTopic = Definition{FieldURI: "conversation:Topic", SummarySafe: true, MinVersion: request.VersionExchange2010}
)

// ParseDefinition resolves a field URI against the well-known definitions.
func ParseDefinition(fieldURI string) (Definition, bool) {
	for _, d := range wellKnown {
		if d.FieldURI == fieldURI {
			return d, true
		}
	}
	return Definition{}, false
}

var wellKnown = []Definition{
	ItemSubject, ItemDateTimeReceived, ItemSize, ItemHasAttachments,
	ItemBody, ItemMimeContent, ItemAttachments, ItemPreview, ItemTextBody,
	FolderDisplayName, FolderTotalCount, FolderUnreadCount,
	CalendarStart, CalendarEnd,
	ConversationTopic,
}
