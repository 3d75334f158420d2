//go:build unix

package platform

import "os"

var defaultLinker Linker = unixLinker{}

type unixLinker struct{ osLinker }

func (unixLinker) SymlinkDir(target, link string) error {
	return os.Symlink(target, link)
}
