package cache

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"github.com/spf13/afero"
)

// maxLinkHops bounds symlink resolution of a scan root.
const maxLinkHops = 40

// DirSize returns the total size in bytes of the regular files below path.
// A symlinked path is resolved first; symlinks below it are neither followed
// nor counted. A missing path has size 0.
func DirSize(fsys afero.Fs, path string) (int64, error) {
	info, err := fsys.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, eris.Wrapf(err, "inspecting %s", path)
	}
	if info.IsDir() {
		if path, err = ResolveLinks(fsys, path); err != nil {
			return 0, err
		}
	}

	var total int64
	err = afero.Walk(fsys, path, func(p string, info os.FileInfo, walkErr error) error {
		if walkErr != nil {
			return eris.Wrapf(walkErr, "walking %s", p)
		}
		if info.Mode().IsRegular() {
			total += info.Size()
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ResolveLinks follows symlinks at path itself until it names a non-link.
// Filesystems without link support return path unchanged.
func ResolveLinks(fsys afero.Fs, path string) (string, error) {
	lstater, ok := fsys.(afero.Lstater)
	if !ok {
		return path, nil
	}
	reader, ok := fsys.(afero.LinkReader)
	if !ok {
		return path, nil
	}

	for range maxLinkHops {
		info, _, err := lstater.LstatIfPossible(path)
		if err != nil {
			return "", eris.Wrapf(err, "inspecting %s", path)
		}
		if info.Mode()&os.ModeSymlink == 0 {
			return path, nil
		}
		dest, err := reader.ReadlinkIfPossible(path)
		if err != nil {
			return "", eris.Wrapf(err, "reading link %s", path)
		}
		if !filepath.IsAbs(dest) {
			dest = filepath.Join(filepath.Dir(path), dest)
		}
		path = dest
	}
	return "", eris.Errorf("too many levels of symbolic links at %s", path)
}

const (
	kib = 1024
	mib = kib * 1024
	gib = mib * 1024
)

// FormatSize renders a byte count with binary units, e.g. "1.50 KiB".
func FormatSize(size int64) string {
	switch {
	case size >= gib:
		return fmt.Sprintf("%.2f GiB", float64(size)/gib)
	case size >= mib:
		return fmt.Sprintf("%.2f MiB", float64(size)/mib)
	case size >= kib:
		return fmt.Sprintf("%.2f KiB", float64(size)/kib)
	default:
		return fmt.Sprintf("%d B", size)
	}
}
