package main

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// DocumentRenderer builds the Markdown document written for each record
type DocumentRenderer struct {
	tmpl      *template.Template
	converter *md.Converter // nil unless HTML bodies are converted
}

// NewDocumentRenderer parses the front matter template. The template output is
// not escaped; titles and topics are inserted verbatim.
func NewDocumentRenderer(templateText string, convertHTML bool) (*DocumentRenderer, error) {
	tmpl, err := template.New("article").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(templateText)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}

	r := &DocumentRenderer{tmpl: tmpl}
	if convertHTML {
		r.converter = md.NewConverter("", true, nil)
	}
	return r, nil
}

// Render returns the front matter followed by the article body
func (r *DocumentRenderer) Render(article *Article) (string, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, article); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	body := article.Body
	if r.converter != nil {
		converted, err := r.converter.ConvertString(body)
		if err != nil {
			return "", fmt.Errorf("converting HTML to markdown: %w", err)
		}
		body = converted
	}

	buf.WriteString(body)
	return buf.String(), nil
}

// newArticle maps an input record onto template data
func newArticle(record InputRecord) (*Article, error) {
	if record.invalid != nil {
		return nil, record.invalid
	}

	var missing []string
	if record.Title == nil {
		missing = append(missing, "title")
	}
	if record.Tags == nil {
		missing = append(missing, "tags")
	}
	if record.Body == nil {
		missing = append(missing, "body")
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	topics := make([]string, 0, len(*record.Tags))
	for _, tag := range *record.Tags {
		topics = append(topics, tag.Name)
	}

	return &Article{
		Title:  *record.Title,
		Topics: topics,
		Body:   *record.Body,
	}, nil
}
