package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the output.
	OutputMode string

	// AuthorMatchMode represents how the author filter compares commits.
	AuthorMatchMode string
)

// All output modes supported.
const (
	TextOut OutputMode = "text" // default
	CSVOut  OutputMode = "csv"
	JSONOut OutputMode = "json"
)

// All author match modes supported. FullMatch compares the formatted
// "Name <email>" string, EmailMatch compares the bare email. Matching is
// always exact, never fuzzy or case-insensitive.
const (
	FullMatch  AuthorMatchMode = "full" // default
	EmailMatch AuthorMatchMode = "email"
)

// ValidOutputModes enumerates accepted --output values.
var ValidOutputModes = map[OutputMode]struct{}{
	TextOut: {},
	CSVOut:  {},
	JSONOut: {},
}

// ValidAuthorMatchModes enumerates accepted --match values.
var ValidAuthorMatchModes = map[AuthorMatchMode]struct{}{
	FullMatch:  {},
	EmailMatch: {},
}
