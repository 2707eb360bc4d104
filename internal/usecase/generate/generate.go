// Where: cli/internal/usecase/generate/generate.go
// What: Example project materialization.
// Why: Copy the base template and overlay the example files without CLI concerns.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/poruru/fhevm-examples/cli/internal/domain/example"
	"github.com/poruru/fhevm-examples/cli/internal/domain/readme"
	"github.com/poruru/fhevm-examples/cli/internal/infra/fileops"
	"github.com/poruru/fhevm-examples/cli/internal/infra/logging"
	"github.com/poruru/fhevm-examples/cli/internal/meta"
)

// ErrMaterialization matches every MaterializationError via errors.Is.
var ErrMaterialization = errors.New("materialization failed")

var errInvalidRequest = errors.New("invalid generation request")

// MaterializationError reports the step and path of a filesystem failure.
// The underlying error is kept intact for errors.Is/As.
type MaterializationError struct {
	Step string
	Path string
	Err  error
}

func (e *MaterializationError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Step, e.Path, e.Err)
}

func (e *MaterializationError) Unwrap() error {
	return e.Err
}

func (e *MaterializationError) Is(target error) bool {
	return target == ErrMaterialization
}

// Request captures the inputs of one generation run.
type Request struct {
	Example     example.Definition
	TemplateDir string
	OutputDir   string
	ReadmeMode  readme.Mode
	Atomic      bool
}

// TargetDir is the project directory: <OutputDir>/<example name>.
func (r Request) TargetDir() string {
	return filepath.Join(r.OutputDir, r.Example.Name)
}

// Result describes a completed generation.
type Result struct {
	TargetDir string
	// Files lists the generated paths relative to TargetDir.
	Files []string
}

// Generator materializes example projects on a filesystem.
type Generator struct {
	fs     afero.Fs
	logger logrus.FieldLogger
}

// New returns a Generator. A nil logger discards debug output.
func New(fsys afero.Fs, logger logrus.FieldLogger) *Generator {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Generator{fs: fsys, logger: logger}
}

type generatedFile struct {
	rel     string
	content string
}

// Run copies the template into the target directory and writes the
// contract, test, and README files. Without Atomic, a failure part way
// leaves whatever was already written in place.
func (g *Generator) Run(ctx context.Context, req Request) (Result, error) {
	if err := validateRequest(req); err != nil {
		return Result{}, err
	}

	readmeContent, err := readme.Render(req.ReadmeMode, req.Example.ContractName, req.Example.ContractSource)
	if err != nil {
		return Result{}, fmt.Errorf("render readme: %w", err)
	}
	contractName := req.Example.ContractName
	files := []generatedFile{
		{rel: filepath.Join(meta.ContractsDir, contractName+meta.ContractFileExt), content: req.Example.ContractSource},
		{rel: filepath.Join(meta.TestDir, contractName+meta.TestFileExt), content: req.Example.TestSource},
		{rel: meta.ReadmeFile, content: readmeContent},
	}

	target := req.TargetDir()
	log := g.logger.WithFields(logrus.Fields{
		"example": req.Example.Name,
		"target":  target,
		"atomic":  req.Atomic,
	})
	log.Debug("materializing example")

	if !req.Atomic {
		if err := g.materialize(ctx, log, req.TemplateDir, target, files); err != nil {
			return Result{}, err
		}
		return newResult(target, files), nil
	}

	staging, err := fileops.TempDirBeside(g.fs, target)
	if err != nil {
		return Result{}, &MaterializationError{Step: "create staging dir for", Path: target, Err: err}
	}
	log.WithField("staging", staging).Debug("staging into temporary directory")
	if err := g.materialize(ctx, log, req.TemplateDir, staging, files); err != nil {
		return Result{}, errors.Join(err, g.removeStaging(staging))
	}
	if err := fileops.ReplaceDir(g.fs, staging, target); err != nil {
		return Result{}, errors.Join(
			&MaterializationError{Step: "move staged project to", Path: target, Err: err},
			g.removeStaging(staging),
		)
	}
	return newResult(target, files), nil
}

func (g *Generator) removeStaging(staging string) error {
	if err := fileops.RemoveDir(g.fs, staging); err != nil {
		return &MaterializationError{Step: "remove staging dir", Path: staging, Err: err}
	}
	return nil
}

func (g *Generator) materialize(
	ctx context.Context,
	log logrus.FieldLogger,
	templateDir string,
	dir string,
	files []generatedFile,
) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	log.WithField("template", templateDir).Debug("copying template")
	if err := fileops.CopyDir(g.fs, templateDir, dir); err != nil {
		return &MaterializationError{Step: "copy template", Path: templateDir, Err: err}
	}
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(dir, file.rel)
		log.WithField("file", file.rel).Debug("writing file")
		if err := fileops.WriteFile(g.fs, path, file.content); err != nil {
			return &MaterializationError{Step: "write", Path: path, Err: err}
		}
	}
	return nil
}

func validateRequest(req Request) error {
	if err := req.Example.Validate(); err != nil {
		return fmt.Errorf("%w: %w", errInvalidRequest, err)
	}
	if strings.TrimSpace(req.TemplateDir) == "" {
		return fmt.Errorf("%w: template dir is required", errInvalidRequest)
	}
	if strings.TrimSpace(req.OutputDir) == "" {
		return fmt.Errorf("%w: output dir is required", errInvalidRequest)
	}
	return nil
}

func newResult(target string, files []generatedFile) Result {
	rels := make([]string, 0, len(files))
	for _, f := range files {
		rels = append(rels, filepath.ToSlash(f.rel))
	}
	return Result{TargetDir: target, Files: rels}
}
