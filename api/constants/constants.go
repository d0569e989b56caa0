package constants

// DateFormat is the date-only layout used in audit messages and responses.
const DateFormat = "2006-01-02"

// Content types
const ContentTypeJSON = "application/json"
