package packager

// Field labels used by the placeholder guard and its errors.
const (
	FieldName             = "name"
	FieldSummary          = "summary"
	FieldUser             = "generating_user"
	FieldContact          = "contact"
	FieldFirstDescription = "column_descriptions[0]"
	FieldReadme           = "readme"
)

// DefaultPlaceholders returns the built-in table of template values the guard
// refuses to package. Matching is exact: a field equal to its placeholder
// means the caller never replaced the example text.
func DefaultPlaceholders() map[string]string {
	return map[string]string{
		FieldName:             "dummy",
		FieldSummary:          "Enter a short summary of the catalogue here.",
		FieldUser:             "Your Name",
		FieldContact:          "your@email.com",
		FieldFirstDescription: "Description of column 1",
		FieldReadme:           "Replace this text with the README for your catalogue.",
	}
}

// guardedFields lists the checked fields in reporting order.
//
//nolint:gochecknoglobals // Fixed ordering table for deterministic reporting.
var guardedFields = []string{
	FieldName,
	FieldSummary,
	FieldUser,
	FieldContact,
	FieldFirstDescription,
	FieldReadme,
}
