// Package platform provides the directory-symlink capability used for the
// convenience target link. Unix and Windows use native symlinks; on other
// platforms the linker is a no-op that reports ErrSymlinkUnsupported so the
// caller can warn and carry on.
package platform
