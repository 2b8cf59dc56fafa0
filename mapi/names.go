// names.go holds the property type and id constants together with their
// symbolic-name tables for diagnostic output.

package mapi

import "fmt"

// Property types (PT_*).
const (
	TypeShort    = 0x0002 // PT_SHORT
	TypeLong     = 0x0003 // PT_LONG
	TypeFloat    = 0x0004 // PT_FLOAT
	TypeDouble   = 0x0005 // PT_DOUBLE
	TypeCurrency = 0x0006 // PT_CURRENCY
	TypeAppTime  = 0x0007 // PT_APPTIME
	TypeError    = 0x000A // PT_ERROR
	TypeBoolean  = 0x000B // PT_BOOLEAN
	TypeObject   = 0x000D // PT_OBJECT
	TypeInt64    = 0x0014 // PT_I8
	TypeString8  = 0x001E // PT_STRING8
	TypeUnicode  = 0x001F // PT_UNICODE
	TypeSystime  = 0x0040 // PT_SYSTIME
	TypeCLSID    = 0x0048 // PT_CLSID
	TypeBinary   = 0x0102 // PT_BINARY
)

// Property ids (PR_*) commonly seen in TNEF property streams.
const (
	PropMessageClass       = 0x001A // PR_MESSAGE_CLASS
	PropSubject            = 0x0037 // PR_SUBJECT
	PropSenderName         = 0x0C1A // PR_SENDER_NAME
	PropSenderEmail        = 0x0C1F // PR_SENDER_EMAIL_ADDRESS
	PropDisplayCc          = 0x0E03 // PR_DISPLAY_CC
	PropDisplayTo          = 0x0E04 // PR_DISPLAY_TO
	PropBody               = 0x1000 // PR_BODY
	PropRtfCompressed      = 0x1009 // PR_RTF_COMPRESSED
	PropBodyHTML           = 0x1013 // PR_BODY_HTML
	PropDisplayName        = 0x3001 // PR_DISPLAY_NAME
	PropAttachDataObj      = 0x3701 // PR_ATTACH_DATA_OBJ
	PropAttachExtension    = 0x3703 // PR_ATTACH_EXTENSION
	PropAttachFilename     = 0x3704 // PR_ATTACH_FILENAME
	PropAttachMethod       = 0x3705 // PR_ATTACH_METHOD
	PropAttachLongFilename = 0x3707 // PR_ATTACH_LONG_FILENAME
	PropAttachMimeTag      = 0x370E // PR_ATTACH_MIME_TAG
	PropAttachContentID    = 0x3712 // PR_ATTACH_CONTENT_ID
)

// propertyNames maps property ids to their PR_* names.
var propertyNames = map[int]string{
	0x0002: "PR_ALTERNATE_RECIPIENT",
	0x001A: "PR_MESSAGE_CLASS",
	0x0037: "PR_SUBJECT",
	0x003D: "PR_SUBJECT_PREFIX",
	0x0042: "PR_SENT_REPRESENTING_NAME",
	0x0065: "PR_SENT_REPRESENTING_EMAIL",
	0x0070: "PR_CONVERSATION_TOPIC",
	0x0071: "PR_CONVERSATION_INDEX",
	0x0C1A: "PR_SENDER_NAME",
	0x0C1E: "PR_SENDER_ADDRTYPE",
	0x0C1F: "PR_SENDER_EMAIL_ADDRESS",
	0x0E03: "PR_DISPLAY_CC",
	0x0E04: "PR_DISPLAY_TO",
	0x0E06: "PR_MESSAGE_DELIVERY_TIME",
	0x0E07: "PR_MESSAGE_FLAGS",
	0x0E08: "PR_MESSAGE_SIZE",
	0x0E1D: "PR_SUBJECT_NORMALIZED",
	0x0FF9: "PR_RECORD_KEY",
	0x1000: "PR_BODY",
	0x1009: "PR_RTF_COMPRESSED",
	0x1013: "PR_BODY_HTML",
	0x1035: "PR_INTERNET_MESSAGE_ID",
	0x1039: "PR_INTERNET_CPID",
	0x3001: "PR_DISPLAY_NAME",
	0x3007: "PR_CREATION_TIME",
	0x3008: "PR_LAST_MODIFICATION_TIME",
	0x300B: "PR_SEARCH_KEY",
	0x3701: "PR_ATTACH_DATA_OBJ",
	0x3702: "PR_ATTACH_ENCODING",
	0x3703: "PR_ATTACH_EXTENSION",
	0x3704: "PR_ATTACH_FILENAME",
	0x3705: "PR_ATTACH_METHOD",
	0x3707: "PR_ATTACH_LONG_FILENAME",
	0x3709: "PR_ATTACH_RENDERING",
	0x370B: "PR_RENDERING_POSITION",
	0x370E: "PR_ATTACH_MIME_TAG",
	0x3712: "PR_ATTACH_CONTENT_ID",
	0x3714: "PR_ATTACH_FLAGS",
}

// typeNames maps property types to their PT_* names.
var typeNames = map[int]string{
	TypeShort:    "PT_SHORT",
	TypeLong:     "PT_LONG",
	TypeFloat:    "PT_FLOAT",
	TypeDouble:   "PT_DOUBLE",
	TypeCurrency: "PT_CURRENCY",
	TypeAppTime:  "PT_APPTIME",
	TypeError:    "PT_ERROR",
	TypeBoolean:  "PT_BOOLEAN",
	TypeObject:   "PT_OBJECT",
	TypeInt64:    "PT_I8",
	TypeString8:  "PT_STRING8",
	TypeUnicode:  "PT_UNICODE",
	TypeSystime:  "PT_SYSTIME",
	TypeCLSID:    "PT_CLSID",
	TypeBinary:   "PT_BINARY",
}

// PropertyName returns the symbolic PR_* name of a property id, or "" for
// ids outside the table.
func PropertyName(id int) string {
	return propertyNames[id]
}

// TypeName returns the symbolic PT_* name of a property type, or a hex
// form for types outside the table.
func TypeName(t int) string {
	if n, ok := typeNames[t]; ok {
		return n
	}
	return fmt.Sprintf("0x%04X", t)
}
