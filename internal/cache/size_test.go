package cache

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func writeBytes(t *testing.T, fsys afero.Fs, path string, n int) {
	t.Helper()
	if err := fsys.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fsys, path, []byte(strings.Repeat("x", n)), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestFormatSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{0, "0 B"},
		{1, "1 B"},
		{1023, "1023 B"},
		{1024, "1.00 KiB"},
		{1536, "1.50 KiB"},
		{1024 * 1024 * 3, "3.00 MiB"},
		{1024*1024*1024 + 512*1024*1024, "1.50 GiB"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := FormatSize(tt.size); got != tt.want {
				t.Errorf("FormatSize(%d) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

func TestDirSize_Empty(t *testing.T) {
	fsys := afero.NewMemMapFs()
	if err := fsys.MkdirAll("/cache/empty", 0755); err != nil {
		t.Fatal(err)
	}

	size, err := DirSize(fsys, "/cache/empty")
	if err != nil {
		t.Fatalf("DirSize failed: %v", err)
	}
	if size != 0 {
		t.Errorf("size = %d, want 0", size)
	}
}

func TestDirSize_Nested(t *testing.T) {
	fsys := afero.NewMemMapFs()
	writeBytes(t, fsys, "/cache/p/debug/a", 10)
	writeBytes(t, fsys, "/cache/p/debug/b", 20)
	writeBytes(t, fsys, "/cache/p/release/c", 30)

	size, err := DirSize(fsys, "/cache/p")
	if err != nil {
		t.Fatalf("DirSize failed: %v", err)
	}
	if size != 60 {
		t.Errorf("size = %d, want 60", size)
	}
}

func TestDirSize_Missing(t *testing.T) {
	size, err := DirSize(afero.NewMemMapFs(), "/does/not/exist")
	if err != nil {
		t.Fatalf("DirSize on missing dir returned error: %v", err)
	}
	if size != 0 {
		t.Errorf("size = %d, want 0", size)
	}
}

func TestDirSize_SkipsSymlinks(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on Windows")
	}

	tmp := t.TempDir()
	outside := filepath.Join(tmp, "outside")
	root := filepath.Join(tmp, "root")
	fsys := afero.NewOsFs()
	writeBytes(t, fsys, filepath.Join(outside, "big"), 1000)
	writeBytes(t, fsys, filepath.Join(root, "small"), 5)
	if err := os.Symlink(outside, filepath.Join(root, "link")); err != nil {
		t.Fatal(err)
	}

	size, err := DirSize(fsys, root)
	if err != nil {
		t.Fatalf("DirSize failed: %v", err)
	}
	if size != 5 {
		t.Errorf("size = %d, want 5 (symlink target must not be counted)", size)
	}
}

func TestDirSize_FollowsSymlinkedRoot(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on Windows")
	}

	tmp := t.TempDir()
	backing := filepath.Join(tmp, "ramdisk")
	fsys := afero.NewOsFs()
	writeBytes(t, fsys, filepath.Join(backing, "alpha-1111111", "app"), 100)
	writeBytes(t, fsys, filepath.Join(backing, "beta-2222222", "lib"), 50)

	tests := []struct {
		name string
		dest string
	}{
		{"absolute", backing},
		{"relative", "ramdisk"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := filepath.Join(tmp, "root-"+tt.name)
			if err := os.Symlink(tt.dest, root); err != nil {
				t.Fatal(err)
			}
			size, err := DirSize(fsys, root)
			if err != nil {
				t.Fatalf("DirSize failed: %v", err)
			}
			if size != 150 {
				t.Errorf("size = %d, want 150", size)
			}
		})
	}
}

func TestResolveLinks_Loop(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("symlinks need developer mode on Windows")
	}

	tmp := t.TempDir()
	a := filepath.Join(tmp, "a")
	b := filepath.Join(tmp, "b")
	if err := os.Symlink(b, a); err != nil {
		t.Fatal(err)
	}
	if err := os.Symlink(a, b); err != nil {
		t.Fatal(err)
	}

	if _, err := ResolveLinks(afero.NewOsFs(), a); err == nil {
		t.Error("expected an error for a symlink loop")
	}
}
