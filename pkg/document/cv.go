// Package document renders CVs into downloadable documents.
package document

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"cvhub-backend/internal/domain"
)

// cvTemplate is the printable CV layout. All values are escaped by html/template.
const cvTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Personal.FullName}} - CV</title>
    <style>
        body { font-family: Arial, sans-serif; margin: 40px; color: #333; }
        h1 { color: #333; margin-bottom: 4px; }
        h2 { color: #666; margin-top: 20px; border-bottom: 1px solid #ddd; }
        .section { margin-bottom: 20px; }
        .muted { color: #888; }
    </style>
</head>
<body>
    <h1>{{.Personal.FullName}}</h1>
    {{with .Personal.Headline}}<p>{{.}}</p>{{end}}
    <p class="muted">{{join (contacts .Personal) " | "}}</p>
    {{with .Personal.Summary}}<p>{{.}}</p>{{end}}

    <h2>Work Experience</h2>
    {{range .Experience}}
    <div class="section">
        <strong>{{.Position}}</strong> at {{.Company}}
        <p class="muted">{{.StartDate}} - {{if .CurrentlyWorking}}Present{{else}}{{.EndDate}}{{end}}</p>
        {{with .Description}}<p>{{.}}</p>{{end}}
    </div>
    {{end}}

    <h2>Education</h2>
    {{range .Education}}
    <div class="section">
        <strong>{{.Degree}}</strong>{{with .Field}} in {{.}}{{end}}
        <p>{{.School}}</p>
        {{with .GraduationDate}}<p class="muted">{{.}}</p>{{end}}
    </div>
    {{end}}

    <h2>Skills</h2>
    <p>{{join .Skills ", "}}</p>
</body>
</html>`

var cvTmpl = template.Must(template.New("cv").Funcs(template.FuncMap{
	"join":     strings.Join,
	"contacts": contacts,
}).Parse(cvTemplate))

func contacts(p domain.PersonalInfo) []string {
	out := make([]string, 0, 3)
	for _, v := range []string{p.Email, p.Phone, p.Location} {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// RenderCV returns the CV as a standalone HTML document.
func RenderCV(content domain.CVContent) ([]byte, error) {
	var buf bytes.Buffer
	if err := cvTmpl.Execute(&buf, content); err != nil {
		return nil, fmt.Errorf("failed to execute cv template: %w", err)
	}
	return buf.Bytes(), nil
}

var unsafeFilenameChars = regexp.MustCompile(`[^\p{L}\p{N} ._-]+`)

// Filename returns the attachment name for a CV export, e.g. "Ana Lopez-CV.pdf".
func Filename(fullName string) string {
	name := strings.TrimSpace(unsafeFilenameChars.ReplaceAllString(fullName, ""))
	if name == "" {
		name = "Untitled"
	}
	return name + "-CV.pdf"
}
