package render

import (
	"fmt"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-formstate/pkg/validation"
)

const errorListTemplate = `{% if messages %}<ul class="{{ class }}"{% if field %} data-field="{{ field }}"{% endif %}>{% for message in messages %}<li>{{ message|safe }}</li>{% endfor %}</ul>{% endif %}`

var (
	htmlOnce     sync.Once
	htmlTemplate *pongo2.Template
	htmlErr      error
	textPolicy   *bluemonday.Policy
)

func errorListRenderer() (*pongo2.Template, *bluemonday.Policy, error) {
	htmlOnce.Do(func() {
		htmlTemplate, htmlErr = pongo2.FromString(errorListTemplate)
		textPolicy = bluemonday.StrictPolicy()
	})
	return htmlTemplate, textPolicy, htmlErr
}

// HTML renders errs as a <ul> fragment for field. Messages are reduced to
// plain escaped text, so markup in Custom messages or translations never
// reaches the page. An empty list renders "".
func (f *Formatter) HTML(field string, errs []validation.Error) (string, error) {
	if len(errs) == 0 {
		return "", nil
	}

	tpl, policy, err := errorListRenderer()
	if err != nil {
		return "", fmt.Errorf("render: compile error list template: %w", err)
	}

	messages := make([]string, 0, len(errs))
	for _, msg := range f.Messages(errs) {
		if cleaned := strings.TrimSpace(policy.Sanitize(msg)); cleaned != "" {
			messages = append(messages, cleaned)
		}
	}

	class := "field-errors"
	if f != nil && f.listClass != "" {
		class = f.listClass
	}

	out, err := tpl.Execute(pongo2.Context{
		"class":    class,
		"field":    field,
		"messages": messages,
	})
	if err != nil {
		return "", fmt.Errorf("render: execute error list template: %w", err)
	}
	return out, nil
}

// HTML renders errs with the default English Formatter.
func HTML(field string, errs []validation.Error) (string, error) {
	return NewFormatter().HTML(field, errs)
}
