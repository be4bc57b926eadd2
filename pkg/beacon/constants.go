package beacon

// Exit codes used by the beacon command.
//   - 0: file is valid
//   - 1: file has errors (validation or parse failure)
//   - 2: input not found, unreadable, download failure or CLI misuse
//   - 3: internal panic
const (
	ExitSuccess     = 0
	ExitInvalid     = 1
	ExitSourceError = 2
	ExitUsageError  = 2
	ExitPanic       = 3
)

// Meta field names defined by the BEACON format.
const (
	FieldFormat      = "FORMAT"
	FieldPrefix      = "PREFIX"
	FieldTarget      = "TARGET"
	FieldMessage     = "MESSAGE"
	FieldRelation    = "RELATION"
	FieldAnnotation  = "ANNOTATION"
	FieldDescription = "DESCRIPTION"
	FieldCreator     = "CREATOR"
	FieldContact     = "CONTACT"
	FieldHomepage    = "HOMEPAGE"
	FieldFeed        = "FEED"
	FieldTimestamp   = "TIMESTAMP"
	FieldUpdate      = "UPDATE"
	FieldSourceSet   = "SOURCESET"
	FieldTargetSet   = "TARGETSET"
	FieldName        = "NAME"
	FieldInstitution = "INSTITUTION"
)

// Default values applied when a link construction field is absent.
const (
	DefaultPrefix   = "{+ID}"
	DefaultTarget   = "{+ID}"
	DefaultMessage  = ""
	DefaultRelation = "http://www.w3.org/2000/01/rdf-schema#seeAlso"
)

// URI pattern placeholders.
const (
	PlaceholderReserved = "{+ID}"
	PlaceholderSimple   = "{ID}"
)

// byteOrderMark is the UTF-8 encoding of U+FEFF.
const byteOrderMark = "\xEF\xBB\xBF"
