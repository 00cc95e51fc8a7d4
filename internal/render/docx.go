package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/fumiama/go-docx"
	"github.com/jmatteson/profilegen/internal/profile"
)

// DOCX writes the profile as a Word document, the export format offices
// actually edit. Section order mirrors the HTML preview, with the same
// auto-hide rule.
func DOCX(rec *profile.Record, w io.Writer) error {
	doc := docx.New().WithDefaultTheme()

	header := rec.Name
	if rec.Credentials != "" {
		header = strings.TrimSpace(rec.Name + ", " + rec.Credentials)
	}
	if header != "" {
		doc.AddParagraph().AddText(header).Size("32").Bold()
	}
	if rec.Specialty != "" {
		doc.AddParagraph().AddText(rec.Specialty).Size("24").Color("595959")
	}

	addText := func(title, body string) {
		if isBlank(body) {
			return
		}
		doc.AddParagraph().AddText(title).Size("26").Bold()
		doc.AddParagraph().AddText(body)
	}
	addList := func(title string, items []string) {
		items = realItems(items)
		if len(items) == 0 {
			return
		}
		doc.AddParagraph().AddText(title).Size("26").Bold()
		for _, item := range items {
			doc.AddParagraph().AddText(item)
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

	if len(rec.Locations) > 0 {
		doc.AddParagraph().AddText("Locations").Size("26").Bold()
		for _, loc := range rec.Locations {
			if loc.Name != "" {
				doc.AddParagraph().AddText(loc.Name).Bold()
			}
			if loc.Address != "" {
				doc.AddParagraph().AddText(loc.Address)
			}
			if loc.Phone != "" {
				doc.AddParagraph().AddText("Phone: " + loc.Phone)
			}
			if loc.Fax != "" {
				doc.AddParagraph().AddText("Fax: " + loc.Fax)
			}
		}
	}

	doc.AddParagraph().AddText("Background").Size("26").Bold()
	doc.AddParagraph().AddText(rec.Background)

	if _, err := doc.WriteTo(w); err != nil {
		return fmt.Errorf("write docx: %w", err)
	}
	return nil
}
