//go:build !unix && !windows

package platform

var defaultLinker Linker = unsupportedLinker{}
