package template

import (
	"regexp"
	"time"
)

// FieldIDs is the fixed set of user-editable template fields.
var FieldIDs = []string{
	"username", "projectName", "ticketNumber", "prTitle", "apiUrl",
	"contactEmail", "projectDesc", "licenseType", "buildStatus",
	"buildVersion", "date",
}

// Defaults returns the fallback value per field, used when the user
// has not filled one in. The date default is derived from now.
func Defaults(now time.Time) map[string]string {
	return map[string]string{
		"username":     "username",
		"projectName":  "project-name",
		"ticketNumber": "PROJ-000",
		"prTitle":      "Untitled change",
		"apiUrl":       "https://api.example.com",
		"contactEmail": "security@example.com",
		"projectDesc":  "A short description of the project.",
		"licenseType":  "MIT",
		"buildStatus":  "passing",
		"buildVersion": "1.0.0",
		"date":         now.Format("2006-01-02"),
	}
}

var placeholderRe = regexp.MustCompile(`\{\{(\w+)\}\}`)

// Render substitutes {{field}} tokens verbatim, no escaping. Empty or
// missing field values fall back to the defaults; tokens naming an
// unknown field are left untouched.
func Render(body string, fields map[string]string, now time.Time) string {
	defaults := Defaults(now)

	return placeholderRe.ReplaceAllStringFunc(body, func(tok string) string {
		name := tok[2 : len(tok)-2]
		if v := fields[name]; v != "" {
			return v
		}
		if v, ok := defaults[name]; ok {
			return v
		}
		return tok
	})
}
