package render

import (
	"bytes"
	"html/template"
	"strings"

	"github.com/jmatteson/profilegen/internal/profile"
)

// section is one renderable preview block. Either Paragraph or Items is
// set, never both.
type section struct {
	Title     string
	Paragraph string
	Items     []string
}

type previewData struct {
	Header    string
	Specialty string
	Sections  []section
}

var previewTmpl = template.Must(template.New("preview").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Header}}</title>
<style>
body { font-family: Georgia, serif; max-width: 7.5in; margin: 0.5in auto; color: #222; }
h1 { font-size: 1.5em; margin-bottom: 0; }
.specialty { color: #555; margin-top: 0.2em; }
h2 { font-size: 1.05em; border-bottom: 1px solid #ccc; margin-top: 1.2em; }
ul { margin: 0.3em 0; padding-left: 1.2em; }
</style>
</head>
<body>
<h1>{{.Header}}</h1>
{{if .Specialty}}<p class="specialty">{{.Specialty}}</p>{{end}}
{{range .Sections}}<h2>{{.Title}}</h2>
{{if .Items}}<ul>{{range .Items}}<li>{{.}}</li>
{{end}}</ul>{{else}}<p>{{.Paragraph}}</p>{{end}}
{{end}}</body>
</html>
`))

// isBlank treats placeholder dashes the same as empty: sections whose only
// content is a dash are auto-hidden.
func isBlank(s string) bool {
	s = strings.TrimSpace(s)
	return s == "" || s == "-" || s == "–" || s == "—"
}

func realItems(items []string) []string {
	var out []string
	for _, item := range items {
		if !isBlank(item) {
			out = append(out, item)
		}
	}
	return out
}

// HTML renders the preview document. Every empty section is hidden,
// except Background, which always renders.
func HTML(rec *profile.Record) ([]byte, error) {
	data := previewData{
		Header:    rec.Name,
		Specialty: rec.Specialty,
	}
	if rec.Credentials != "" {
		data.Header = strings.TrimSpace(rec.Name + ", " + rec.Credentials)
	}

	addText := func(title, body string) {
		if !isBlank(body) {
			data.Sections = append(data.Sections, section{Title: title, Paragraph: body})
		}
	}
	addList := func(title string, items []string) {
		if items = realItems(items); len(items) > 0 {
			data.Sections = append(data.Sections, section{Title: title, Items: items})
		}
	}

	addText("Hospital Affiliations", rec.Affiliations)
	addText("Languages", rec.Languages)
	addText("Gender", rec.Gender)
	addText("Academic Title", rec.AcademicTitle)
	addList("Professional Titles", rec.Titles)
	addList("Education", rec.Education)
	addList("Board Certifications", rec.Certifications)
	addList("Memberships", rec.Memberships)

	if items := locationItems(rec.Locations); len(items) > 0 {
		data.Sections = append(data.Sections, section{Title: "Locations", Items: items})
	}

	// Background is exempt from auto-hide.
	data.Sections = append(data.Sections, section{Title: "Background", Paragraph: rec.Background})

	var buf bytes.Buffer
	if err := previewTmpl.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func locationItems(locs []profile.Location) []string {
	var items []string
	for _, loc := range locs {
		var parts []string
		if loc.Name != "" {
			parts = append(parts, loc.Name)
		}
		if loc.Address != "" {
			parts = append(parts, loc.Address)
		}
		if loc.Phone != "" {
			parts = append(parts, "Phone: "+loc.Phone)
		}
		if loc.Fax != "" {
			parts = append(parts, "Fax: "+loc.Fax)
		}
		if len(parts) > 0 {
			items = append(items, strings.Join(parts, " · "))
		}
	}
	return items
}
