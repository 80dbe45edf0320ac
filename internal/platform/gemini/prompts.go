package gemini

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/anhvo909090-boop/DAYBE/internal/generation"
)

//go:embed prompts/*.tmpl
var promptFS embed.FS

// loadTemplate parses the template at path, or the embedded default when path
// is empty.
func loadTemplate(name, path string) (*template.Template, error) {
	var (
		content []byte
		err     error
	)

	if path == "" {
		content, err = promptFS.ReadFile("prompts/" + name + ".tmpl")
	} else {
		content, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read %s prompt template: %v",
			generation.ErrInvalidConfig, name, err)
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to parse %s prompt template: %v",
			generation.ErrInvalidConfig, name, err)
	}

	return tmpl, nil
}

// renderPrompt executes tmpl and trims surrounding whitespace.
func renderPrompt(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", tmpl.Name(), err)
	}
	return strings.TrimSpace(buf.String()), nil
}
