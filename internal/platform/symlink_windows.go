//go:build windows

package platform

import "os"

var defaultLinker Linker = windowsLinker{}

// windowsLinker needs developer mode or elevation. os.Symlink only makes a
// directory link when target already exists as a directory, which holds after
// a successful build.
type windowsLinker struct{ osLinker }

func (windowsLinker) SymlinkDir(target, link string) error {
	return os.Symlink(target, link)
}
