package domain

// TagDelimiter joins tag names into the wire-format string
// ("dp; graphs"). A tag name must not contain it, otherwise the joined
// form becomes ambiguous.
const TagDelimiter = "; "

// Tag is a user-defined label attachable to any question, many-to-many.
// Names are unique and case-sensitive.
type Tag struct {
	Name string
}
