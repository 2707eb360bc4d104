// Where: cli/internal/architecture/scan_test.go
// What: Shared source scanner for architecture guard tests.
// Why: Parse every non-test file under internal/ once per test.
package architecture

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

const modulePath = "github.com/poruru/fhevm-examples/cli"

const internalPrefix = modulePath + "/internal/"

type sourceFile struct {
	rel     string // path relative to internal/, slash separated
	pkg     string // package dir relative to internal/
	fset    *token.FileSet
	ast     *ast.File
	imports map[string]string // local name -> import path
}

func (f sourceFile) layer() string {
	layer, _, _ := strings.Cut(f.pkg, "/")
	return layer
}

func (f sourceFile) line(pos token.Pos) int {
	return f.fset.Position(pos).Line
}

func scanInternal(t *testing.T) []sourceFile {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	root := filepath.Dir(wd)

	fset := token.NewFileSet()
	var files []sourceFile
	err = filepath.WalkDir(root, func(p string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		if filepath.Ext(p) != ".go" || strings.HasSuffix(p, "_test.go") {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		parsed, err := parser.ParseFile(fset, p, nil, parser.SkipObjectResolution)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		files = append(files, sourceFile{
			rel:     rel,
			pkg:     path.Dir(rel),
			fset:    fset,
			ast:     parsed,
			imports: importNames(parsed),
		})
		return nil
	})
	if err != nil {
		t.Fatalf("scan %s: %v", root, err)
	}
	if len(files) == 0 {
		t.Fatalf("no Go sources found under %s", root)
	}
	return files
}

func importNames(file *ast.File) map[string]string {
	names := make(map[string]string, len(file.Imports))
	for _, spec := range file.Imports {
		importPath, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		name := path.Base(importPath)
		if strings.HasPrefix(name, "v") && strings.Count(importPath, "/") > 1 {
			if _, err := strconv.Atoi(name[1:]); err == nil {
				name = path.Base(path.Dir(importPath))
			}
		}
		if spec.Name != nil {
			name = spec.Name.Name
		}
		if name == "_" || name == "." {
			continue
		}
		names[name] = importPath
	}
	return names
}

// internalImport returns the internal/ relative package of importPath.
func internalImport(importPath string) (string, bool) {
	if !strings.HasPrefix(importPath, internalPrefix) {
		return "", false
	}
	return strings.TrimPrefix(importPath, internalPrefix), true
}
