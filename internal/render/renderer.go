// Package render turns a template name and a data map into notification
// HTML. Templates ship inside the binary; compiled templates are cached in
// the Renderer instance, safe under concurrent first-use.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"sync"

	"github.com/xeipuuv/gojsonschema"

	apperrors "github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/errors"
	"github.com/Enterprise-CMCS/managed-care-review-sub006/internal/common/logger"
)

// Renderer compiles and caches notification templates. Construct one at
// process start and share it; there is no module-level state.
type Renderer struct {
	logger logger.Logger
	cache  map[string]*template.Template
	mu     sync.RWMutex
}

func New(log logger.Logger) *Renderer {
	return &Renderer{
		logger: log.WithFields(map[string]interface{}{"component": "renderer"}),
		cache:  make(map[string]*template.Template),
	}
}

// Render executes the named template against data and returns the HTML.
// Template names are restricted to alphanumeric characters; anything else
// is a caller error. Data is validated against the template's schema before
// execution so missing fields fail loudly instead of rendering blanks.
func (r *Renderer) Render(name string, data map[string]interface{}) (string, error) {
	if !isAlphanumeric(name) {
		return "", apperrors.NewInvalidTemplateNameError(name)
	}

	if err := r.validateData(name, data); err != nil {
		return "", err
	}

	tmpl, err := r.loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		r.logger.Error("template execution failed", map[string]interface{}{
			"template": name,
			"error":    err.Error(),
		})
		return "", apperrors.NewTemplateExecutionError(name, err)
	}

	return buf.String(), nil
}

func (r *Renderer) loadTemplate(name string) (*template.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	raw, err := templateFS.ReadFile("templates/" + name + ".gohtml")
	if err != nil {
		return nil, apperrors.NewTemplateNotFoundError(name)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, apperrors.NewTemplateExecutionError(name, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[name]; ok {
		return cached, nil
	}
	r.cache[name] = tmpl
	return tmpl, nil
}

func (r *Renderer) validateData(name string, data map[string]interface{}) error {
	schema, ok := templateSchemas[name]
	if !ok {
		return nil
	}

	schemaLoader := gojsonschema.NewGoLoader(schema)
	documentLoader := gojsonschema.NewGoLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return apperrors.NewTemplateDataInvalidError(name, err.Error())
	}

	if !result.Valid() {
		details := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			details[i] = desc.String()
		}
		return apperrors.NewTemplateDataInvalidError(name, fmt.Sprintf("%v", details))
	}

	return nil
}

func isAlphanumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') && (r < '0' || r > '9') {
			return false
		}
	}
	return true
}
