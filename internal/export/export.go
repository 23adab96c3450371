package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"

	"github.com/jonathan/tailor-engine/internal/types"
)

// Options adjusts what is exported
type Options struct {
	// Body replaces the document content when set, e.g. with an edited draft
	Body string
	// Dismissed suggestions are left out of the suggestions block
	Dismissed []string
}

// templateData is the data structure passed to the export template
type templateData struct {
	Title             string
	Generated         string
	Template          string
	ATSScore          int
	IndustryOptimized bool
	Body              string
	Suggestions       []string
	Metrics           types.DocumentMetrics
}

const exportTemplate = `{{.Title}}
Generated: {{.Generated}}
Template: {{.Template}}
ATS Score: {{.ATSScore}}/100
Industry Optimized: {{yesNo .IndustryOptimized}}

{{.Body}}
{{- if .Suggestions}}

AI Suggestions:
{{- range .Suggestions}}
- {{.}}
{{- end}}
{{- end}}

Metrics:
- Readability Score: {{.Metrics.ReadabilityScore}}
- Keyword Density: {{printf "%.2f" .Metrics.KeywordDensity}}%
- Action Verbs: {{.Metrics.ActionVerbCount}}
- Quantified Achievements: {{.Metrics.QuantifiedAchievements}}
`

var tmpl = template.Must(template.New("export").Funcs(template.FuncMap{
	"yesNo": func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	},
}).Parse(exportTemplate))

// Render returns header, body, undismissed suggestions and metrics as one text document
func Render(doc *types.TailoredDocument, opts Options) (string, error) {
	body := doc.Content
	if strings.TrimSpace(opts.Body) != "" {
		body = opts.Body
	}

	data := templateData{
		Title:             doc.Title,
		Generated:         doc.GeneratedAt.UTC().Format(time.RFC3339),
		Template:          doc.Template,
		ATSScore:          doc.ATSScore,
		IndustryOptimized: doc.IndustryOptimized,
		Body:              strings.TrimRight(body, " \t\r\n"),
		Suggestions:       undismissed(doc.AISuggestions, opts.Dismissed),
		Metrics:           doc.Metrics,
	}

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &RenderError{Message: "failed to execute export template", Cause: err}
	}
	return result.String(), nil
}

// WriteFile renders doc and writes it to path. The content is the same whatever the file extension.
func WriteFile(path string, doc *types.TailoredDocument, opts Options) error {
	text, err := Render(doc, opts)
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return &WriteError{Message: fmt.Sprintf("failed to create directory %s", dir), Cause: err}
		}
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return &WriteError{Message: fmt.Sprintf("failed to write %s", path), Cause: err}
	}
	return nil
}

// FileName returns the default export file name of a document, e.g. "cover_letter.txt"
func FileName(doc *types.TailoredDocument, ext string) string {
	ext = strings.TrimPrefix(ext, ".")
	if ext == "" {
		ext = "txt"
	}
	return string(doc.Type) + "." + ext
}

func undismissed(suggestions, dismissed []string) []string {
	skip := make(map[string]bool, len(dismissed))
	for _, d := range dismissed {
		skip[d] = true
	}
	out := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		if !skip[s] {
			out = append(out, s)
		}
	}
	return out
}
