// Where: cli/internal/domain/example/loader.go
// What: Registry loading from embedded or external YAML documents.
// Why: Keep example content as data validated against a JSON schema.
package example

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
	sigsyaml "sigs.k8s.io/yaml"
)

const schemaResource = "https://fhevm-example.local/schema/registry.schema.json"

//go:embed registry/*.yaml
var builtinFS embed.FS

//go:embed schema/registry.schema.json
var schemaJSON []byte

var (
	schemaOnce     sync.Once
	schemaErr      error
	compiledSchema *jsonschema.Schema

	builtinOnce     sync.Once
	builtinErr      error
	builtinRegistry *Registry
)

type registryDocument struct {
	Examples []Definition `yaml:"examples"`
}

// Builtin returns the registry compiled into the binary.
// It is loaded once per process.
func Builtin() (*Registry, error) {
	builtinOnce.Do(func() {
		builtinRegistry, builtinErr = loadFromFS(builtinFS, "registry")
	})
	return builtinRegistry, builtinErr
}

// LoadFile reads an external registry file of the form `examples: [...]`.
func LoadFile(fsys afero.Fs, filePath string) (*Registry, error) {
	content, err := afero.ReadFile(fsys, filePath)
	if err != nil {
		return nil, fmt.Errorf("read registry %s: %w", filePath, err)
	}
	if err := validateDocument(content, false); err != nil {
		return nil, fmt.Errorf("validate registry %s: %w", filePath, err)
	}
	var doc registryDocument
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, fmt.Errorf("decode registry %s: %w", filePath, err)
	}
	return NewRegistry(doc.Examples)
}

// loadFromFS reads every *.yaml file in dir as a single example definition.
func loadFromFS(fsys fs.FS, dir string) (*Registry, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("read registry dir: %w", err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	defs := make([]Definition, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".yaml") {
			continue
		}
		filePath := path.Join(dir, entry.Name())
		content, err := fs.ReadFile(fsys, filePath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", filePath, err)
		}
		if err := validateDocument(content, true); err != nil {
			return nil, fmt.Errorf("validate %s: %w", filePath, err)
		}
		var def Definition
		if err := yaml.Unmarshal(content, &def); err != nil {
			return nil, fmt.Errorf("decode %s: %w", filePath, err)
		}
		defs = append(defs, def)
	}
	return NewRegistry(defs)
}

// validateDocument checks YAML content against the registry schema.
// A single example document is wrapped into a one-element registry first.
func validateDocument(content []byte, single bool) error {
	sch, err := loadSchema()
	if err != nil {
		return err
	}

	jsonData, err := sigsyaml.YAMLToJSON(content)
	if err != nil {
		return fmt.Errorf("convert yaml to json: %w", err)
	}

	var document any
	if err := json.Unmarshal(jsonData, &document); err != nil {
		return fmt.Errorf("unmarshal json: %w", err)
	}
	if single {
		document = map[string]any{"examples": []any{document}}
	}
	return sch.Validate(document)
}

func loadSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaResource, bytes.NewReader(schemaJSON)); err != nil {
			schemaErr = fmt.Errorf("add registry schema: %w", err)
			return
		}
		compiledSchema, schemaErr = compiler.Compile(schemaResource)
	})
	return compiledSchema, schemaErr
}
