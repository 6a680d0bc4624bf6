package render

import (
	"html/template"
	"io"

	"resume-studio/resume/model"
)

// themeStyles carries the theme's free-form font and color values into the
// templates. They are typed template.CSS because commas in font stacks and
// arbitrary picker colors would otherwise be rejected by the CSS value
// filter; the values still get attribute-escaped.
type themeStyles struct {
	HeadingFont template.CSS
	BodyFont    template.CSS
	Primary     template.CSS
	Accent      template.CSS
}

type page struct {
	Doc    Document
	Styles themeStyles
	Dark   bool
	// GoogleFontsURL is only set on the print document.
	GoogleFontsURL string
}

func newPage(doc Document, theme model.CustomTheme) page {
	return page{
		Doc: doc,
		Styles: themeStyles{
			HeadingFont: template.CSS(theme.HeadingFont),
			BodyFont:    template.CSS(theme.BodyFont),
			Primary:     template.CSS(theme.PrimaryColor),
			Accent:      template.CSS(theme.AccentColor),
		},
		Dark: theme.Mode == model.ModeDark,
	}
}

// WriteFragment renders the live-preview HTML fragment for the given resume
// and theme.
func WriteFragment(w io.Writer, doc Document, theme model.CustomTheme) error {
	return templates.ExecuteTemplate(w, "fragment", newPage(doc, theme))
}

const googleFontsURL = "https://fonts.googleapis.com/css2?family=Playfair+Display:wght@400;600;700&family=Inter:wght@300;400;500;600&display=swap"

// WritePrintDocument renders the self-contained printable document: embedded
// styles, A4 page size with 0.75in margins, theme fonts and colors.
func WritePrintDocument(w io.Writer, doc Document, theme model.CustomTheme) error {
	p := newPage(doc, theme)
	p.GoogleFontsURL = googleFontsURL
	return templates.ExecuteTemplate(w, "print", p)
}

// The section markup is defined once and included by both backends, so the
// preview and the export emit identical section content in identical order.
var templates = template.Must(template.New("resume").Parse(headerTemplate + sectionsTemplate + fragmentTemplate + printTemplate))

const headerTemplate = `{{define "header"}}<header class="resume-header">
  <h1>{{.Doc.Header.Name}}</h1>
  <div class="contact-row">
    {{if .Doc.Header.Email}}<span class="contact-item">{{.Doc.Header.Email}}</span>{{end}}
    {{if .Doc.Header.Phone}}<span class="contact-item">{{.Doc.Header.Phone}}</span>{{end}}
    {{if .Doc.Header.Location}}<span class="contact-item">{{.Doc.Header.Location}}</span>{{end}}
  </div>
  <div class="contact-row">
    {{if .Doc.Header.Website}}<span class="contact-item"><a href="{{.Doc.Header.Website}}">{{.Doc.Header.Website}}</a></span>{{end}}
    {{if .Doc.Header.LinkedIn}}<span class="contact-item"><a href="{{.Doc.Header.LinkedIn}}">LinkedIn</a></span>{{end}}
    {{if .Doc.Header.GitHub}}<span class="contact-item"><a href="{{.Doc.Header.GitHub}}">GitHub</a></span>{{end}}
  </div>
</header>{{end}}`

const sectionsTemplate = `{{define "sections"}}{{range .Doc.Sections}}
<section class="resume-section" data-section="{{.Key}}">
  <h2>{{.Title}}</h2>
  {{if .Summary}}<p class="summary">{{.Summary}}</p>{{end}}
  {{range .Experiences}}<div class="entry">
    <div class="entry-head">
      <div>
        <h3>{{.Position}}</h3>
        <p class="org">{{.Company}}</p>
      </div>
      <div class="entry-meta">
        <p>{{.DateRange}}</p>
        {{if .Location}}<p>{{.Location}}</p>{{end}}
      </div>
    </div>
    {{if .TechStack}}<div class="tags">{{range .TechStack}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
    {{if .Responsibilities}}<ul>{{range .Responsibilities}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>{{end}}
  {{range .Education}}<div class="entry">
    <div class="entry-head">
      <div>
        <h3>{{.DegreeLine}}</h3>
        <p class="org">{{.Institution}}</p>
        {{if .GPA}}<p class="meta">GPA: {{.GPA}}</p>{{end}}
      </div>
      <div class="entry-meta">
        <p>{{.DateRange}}</p>
        {{if .Location}}<p>{{.Location}}</p>{{end}}
      </div>
    </div>
    {{if .Honors}}<p class="meta"><strong>Honors:</strong> {{.Honors}}</p>{{end}}
    {{if .Activities}}<p class="meta"><strong>Activities:</strong> {{.Activities}}</p>{{end}}
  </div>{{end}}
  {{range .Projects}}<div class="entry">
    <div class="entry-head">
      <h3>{{.Name}}</h3>
      <div class="entry-links">
        {{if .Link}}<a href="{{.Link}}">Link</a>{{end}}
        {{if .GitHub}}<a href="{{.GitHub}}">GitHub</a>{{end}}
      </div>
    </div>
    {{if .Description}}<p class="description">{{.Description}}</p>{{end}}
    {{if .TechStack}}<div class="tags">{{range .TechStack}}<span class="tag">{{.}}</span>{{end}}</div>{{end}}
    {{if .Highlights}}<ul>{{range .Highlights}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </div>{{end}}
  {{range .SkillRows}}<p class="skill-row"><strong>{{.Label}}:</strong> {{.Items}}</p>{{end}}
  {{if .Interests}}<p class="interests">{{.Interests}}</p>{{end}}
</section>{{end}}{{end}}`

const fragmentTemplate = `{{define "fragment"}}<div class="resume{{if .Dark}} resume-dark{{end}}" style="font-family: {{.Styles.BodyFont}}">
<style>
  .resume h1 { font-family: {{.Styles.HeadingFont}}; color: {{.Styles.Primary}}; }
  .resume h2 { font-family: {{.Styles.HeadingFont}}; color: {{.Styles.Primary}}; border-bottom: 1px solid #d1d5db; padding-bottom: 4px; }
  .resume .org { color: {{.Styles.Accent}}; }
  .resume a { color: {{.Styles.Accent}}; }
</style>
{{template "header" .}}
<main>{{template "sections" .}}</main>
</div>{{end}}`

const printTemplate = `{{define "print"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Doc.Header.Name}}</title>
<link href="{{.GoogleFontsURL}}" rel="stylesheet">
<style>
  @page {
    size: A4;
    margin: 0.75in;
  }
  * { box-sizing: border-box; }
  body {
    font-family: {{.Styles.BodyFont}};
    font-size: 14px;
    line-height: 1.5;
    color: #111827;
    margin: 0;
    padding: 0;
    background: white;
  }
  .resume-container { max-width: 8.5in; margin: 0 auto; background: white; }
  h1 {
    font-family: {{.Styles.HeadingFont}};
    font-size: 32px;
    font-weight: 700;
    color: {{.Styles.Primary}};
    margin: 0 0 16px 0;
  }
  h2 {
    font-family: {{.Styles.HeadingFont}};
    font-size: 18px;
    font-weight: 600;
    color: {{.Styles.Primary}};
    margin-bottom: 12px;
    padding-bottom: 4px;
    border-bottom: 1px solid #d1d5db;
  }
  h3 { font-weight: 600; color: #111827; margin: 0; font-size: 15px; }
  section { margin-bottom: 16px; }
  .contact-row { display: flex; flex-wrap: wrap; gap: 16px; font-size: 14px; color: #6b7280; margin-bottom: 8px; }
  .entry { margin-bottom: 12px; }
  .entry-head { display: flex; justify-content: space-between; align-items: flex-start; margin-bottom: 4px; }
  .entry-meta { text-align: right; font-size: 14px; color: #6b7280; }
  .entry-meta p, .entry-head p { margin: 0; }
  .org { color: {{.Styles.Accent}}; }
  .meta { font-size: 14px; color: #374151; margin: 0 0 4px 0; }
  .tags { display: flex; flex-wrap: wrap; gap: 4px; margin-bottom: 8px; }
  .tag { background: #f3f4f6; border: 1px solid #d1d5db; padding: 2px 6px; border-radius: 4px; font-size: 12px; }
  ul { list-style-type: disc; padding-left: 20px; margin: 0; color: #374151; font-size: 14px; line-height: 1.5; }
  li { margin-bottom: 4px; }
  a { color: {{.Styles.Accent}}; text-decoration: none; }
  .skill-row, .interests, .summary, .description { color: #374151; font-size: 14px; margin: 0 0 8px 0; }
  @media print {
    body { -webkit-print-color-adjust: exact; print-color-adjust: exact; }
  }
</style>
</head>
<body>
<div class="resume-container">
{{template "header" .}}
<main>{{template "sections" .}}</main>
</div>
</body>
</html>{{end}}`
