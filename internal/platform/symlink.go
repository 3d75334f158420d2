package platform

import (
	"errors"
	"os"
)

// ErrSymlinkUnsupported is returned by linkers on platforms without symlinks.
var ErrSymlinkUnsupported = errors.New("symlinks are not supported on this platform")

// Linker creates, reads, and removes directory symlinks.
type Linker interface {
	// SymlinkDir creates link pointing at the directory target.
	SymlinkDir(target, link string) error
	// Readlink returns the target of the symlink at link.
	Readlink(link string) (string, error)
	// Remove deletes the symlink itself, never its target.
	Remove(link string) error
}

// Default returns the linker for the running platform.
func Default() Linker {
	return defaultLinker
}

// osLinker uses the os package directly.
type osLinker struct{}

func (osLinker) Readlink(link string) (string, error) {
	return os.Readlink(link)
}

func (osLinker) Remove(link string) error {
	return os.Remove(link)
}

// unsupportedLinker is used where the os package cannot create symlinks.
type unsupportedLinker struct{}

func (unsupportedLinker) SymlinkDir(_, _ string) error { return ErrSymlinkUnsupported }

func (unsupportedLinker) Readlink(_ string) (string, error) { return "", ErrSymlinkUnsupported }

func (unsupportedLinker) Remove(_ string) error { return ErrSymlinkUnsupported }

// Unsupported returns the no-op linker regardless of platform.
func Unsupported() Linker {
	return unsupportedLinker{}
}
