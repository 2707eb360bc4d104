// Where: cli/internal/domain/readme/readme.go
// What: README generation for example projects.
// Why: Support the static and annotation-extracting README policies.
package readme

import (
	"bytes"
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"

	"github.com/Masterminds/sprig/v3"
)

// Mode selects how README.md content is produced.
type Mode string

const (
	// ModeStatic renders a fixed body that only names the contract.
	ModeStatic Mode = "static"
	// ModeExtract renders an Overview built from documentation comments.
	ModeExtract Mode = "extract"
)

const (
	// NoticeMarker prefixes contract lines that feed the Overview section.
	NoticeMarker = "/// @notice "
	// Placeholder is the Overview text when no marker lines exist.
	Placeholder = "No description provided."
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var templateCache sync.Map

// ParseMode converts a flag or config value to a Mode.
// An empty value selects ModeExtract.
func ParseMode(value string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(value))) {
	case "", ModeExtract:
		return ModeExtract, nil
	case ModeStatic:
		return ModeStatic, nil
	default:
		return "", fmt.Errorf("unsupported readme mode %q (expected %s or %s)", value, ModeStatic, ModeExtract)
	}
}

// ExtractNotices returns the text following NoticeMarker on each line that
// contains it, in source order.
func ExtractNotices(source string) []string {
	var notices []string
	for _, line := range strings.Split(source, "\n") {
		line = strings.TrimSuffix(line, "\r")
		idx := strings.Index(line, NoticeMarker)
		if idx < 0 {
			continue
		}
		notices = append(notices, line[idx+len(NoticeMarker):])
	}
	return notices
}

type readmeTemplateData struct {
	ContractName string
	Notices      []string
	Placeholder  string
}

// Render produces README.md content for a contract under the given mode.
func Render(mode Mode, contractName, contractSource string) (string, error) {
	data := readmeTemplateData{ContractName: contractName}
	switch mode {
	case ModeStatic:
		return renderTemplate("static.md.tmpl", data)
	case ModeExtract:
		data.Notices = ExtractNotices(contractSource)
		data.Placeholder = Placeholder
		return renderTemplate("extract.md.tmpl", data)
	default:
		return "", fmt.Errorf("unsupported readme mode %q", mode)
	}
}

func renderTemplate(name string, data any) (string, error) {
	tmpl, err := loadTemplate(name)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

func loadTemplate(name string) (*template.Template, error) {
	if value, ok := templateCache.Load(name); ok {
		cached, ok := value.(*template.Template)
		if !ok {
			return nil, fmt.Errorf("template cache type mismatch for %s", name)
		}
		return cached, nil
	}
	tmpl, err := template.New(name).Funcs(sprig.TxtFuncMap()).ParseFS(templateFS, "templates/"+name)
	if err != nil {
		return nil, err
	}
	templateCache.Store(name, tmpl)
	return tmpl, nil
}
