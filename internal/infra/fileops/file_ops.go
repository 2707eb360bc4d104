// Where: cli/internal/infra/fileops/file_ops.go
// What: Shared filesystem operations for project materialization.
// Why: Keep copy and write behavior in one place behind an afero.Fs.
package fileops

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
)

const (
	dirMode  os.FileMode = 0o755
	fileMode os.FileMode = 0o644
)

// ErrNotDir is returned when a copy source is not a directory.
var ErrNotDir = errors.New("not a directory")

func EnsureDir(fsys afero.Fs, path string) error {
	return fsys.MkdirAll(path, dirMode)
}

func RemoveDir(fsys afero.Fs, path string) error {
	if path == "" {
		return nil
	}
	if err := fsys.RemoveAll(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// WriteFile writes content to path, creating parent directories as needed.
// An existing file is truncated.
func WriteFile(fsys afero.Fs, path, content string) error {
	if err := EnsureDir(fsys, filepath.Dir(path)); err != nil {
		return err
	}
	return afero.WriteFile(fsys, path, []byte(content), fileMode)
}

// CopyDir recursively copies the tree at src into dst. Files already present
// in dst are overwritten; other files in dst are left alone. The source must
// be an existing directory that does not contain dst.
func CopyDir(fsys afero.Fs, src, dst string) error {
	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s: %w", src, ErrNotDir)
	}
	if within(src, dst) {
		return fmt.Errorf("copy %s: destination %s is inside the source tree", src, dst)
	}
	if err := EnsureDir(fsys, dst); err != nil {
		return err
	}
	src, err = resolveLinkedRoot(fsys, src)
	if err != nil {
		return err
	}
	return afero.Walk(fsys, src, func(path string, entry os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		switch {
		case entry.Mode()&os.ModeSymlink != 0:
			return copySymlink(fsys, path, target)
		case entry.IsDir():
			return EnsureDir(fsys, target)
		default:
			return copyFileWithMode(fsys, path, target, entry.Mode().Perm())
		}
	})
}

// resolveLinkedRoot follows src when it is itself a symlink so the walk
// starts at a real directory.
func resolveLinkedRoot(fsys afero.Fs, src string) (string, error) {
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return src, nil
	}
	for i := 0; i < 40; i++ {
		info, _, err := lstater.LstatIfPossible(src)
		if err != nil {
			return "", err
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return src, nil
		}
		reader, ok := fsys.(afero.LinkReader)
		if !ok {
			return src, nil
		}
		link, err := reader.ReadlinkIfPossible(src)
		if err != nil {
			return "", err
		}
		if !filepath.IsAbs(link) {
			link = filepath.Join(filepath.Dir(src), link)
		}
		src = link
	}
	return "", fmt.Errorf("%s: too many levels of symbolic links", src)
}

// copySymlink recreates the link at src as dst with the same link text.
// Filesystems that cannot create links get a copy of the resolved entry.
func copySymlink(fsys afero.Fs, src, dst string) error {
	reader, canRead := fsys.(afero.LinkReader)
	linker, canLink := fsys.(afero.Linker)
	if canRead && canLink {
		link, err := reader.ReadlinkIfPossible(src)
		if err != nil {
			return err
		}
		if err := EnsureDir(fsys, filepath.Dir(dst)); err != nil {
			return err
		}
		if err := fsys.Remove(dst); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("replace link %s: %w", dst, err)
		}
		return linker.SymlinkIfPossible(link, dst)
	}

	info, err := fsys.Stat(src)
	if err != nil {
		return err
	}
	if info.IsDir() {
		return CopyDir(fsys, src, dst)
	}
	return copyFileWithMode(fsys, src, dst, info.Mode().Perm())
}

func copyFileWithMode(fsys afero.Fs, src, dst string, mode os.FileMode) error {
	if err := EnsureDir(fsys, filepath.Dir(dst)); err != nil {
		return err
	}
	in, err := fsys.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := fsys.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return err
	}
	return fsys.Chmod(dst, mode)
}

// TempDirBeside creates an empty directory next to path for staging writes.
func TempDirBeside(fsys afero.Fs, path string) (string, error) {
	parent := filepath.Dir(path)
	if err := EnsureDir(fsys, parent); err != nil {
		return "", err
	}
	dir, err := afero.TempDir(fsys, parent, "."+filepath.Base(path)+".tmp-")
	if err != nil {
		return "", err
	}
	if err := fsys.Chmod(dir, dirMode); err != nil {
		_ = fsys.RemoveAll(dir)
		return "", err
	}
	return dir, nil
}

// ReplaceDir moves staged into target. An existing target is moved into a
// fresh hidden sibling directory first and restored if the final rename
// fails; that directory is removed once the replacement succeeded.
func ReplaceDir(fsys afero.Fs, staged, target string) error {
	if !DirExists(fsys, target) && !FileExists(fsys, target) {
		return fsys.Rename(staged, target)
	}

	holder, err := afero.TempDir(fsys, filepath.Dir(target), "."+filepath.Base(target)+".bak-")
	if err != nil {
		return fmt.Errorf("create backup dir for %s: %w", target, err)
	}
	backup := filepath.Join(holder, filepath.Base(target))
	if err := fsys.Rename(target, backup); err != nil {
		return errors.Join(
			fmt.Errorf("move existing %s aside: %w", target, err),
			RemoveDir(fsys, holder),
		)
	}
	if err := fsys.Rename(staged, target); err != nil {
		if restoreErr := fsys.Rename(backup, target); restoreErr != nil {
			return errors.Join(err, fmt.Errorf("restore %s from %s: %w", target, backup, restoreErr))
		}
		return errors.Join(err, RemoveDir(fsys, holder))
	}
	return RemoveDir(fsys, holder)
}

func FileExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

func DirExists(fsys afero.Fs, path string) bool {
	info, err := fsys.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// within reports whether child is path or lies below it.
func within(path, child string) bool {
	parent, err := filepath.Abs(path)
	if err != nil {
		return false
	}
	target, err := filepath.Abs(child)
	if err != nil {
		return false
	}
	if parent == target {
		return true
	}
	return strings.HasPrefix(target, parent+string(filepath.Separator))
}
