package project

import (
	"crypto/md5"
	"encoding/hex"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// ManifestFile is the cargo manifest looked up at the project root.
const ManifestFile = "Cargo.toml"

// FallbackName is used when neither the manifest nor the path yields a name.
const FallbackName = "unknown"

// hashLen is the number of hex characters kept from the path digest.
const hashLen = 7

// Identifier is the per-project cache key.
type Identifier struct {
	Name string
	Hash string
}

// String returns "<name>-<hash>", the cache directory name for the project.
func (id Identifier) String() string {
	return id.Name + "-" + id.Hash
}

// cargoManifest holds the only part of Cargo.toml we care about.
type cargoManifest struct {
	Package *struct {
		Name *string `toml:"name"`
	} `toml:"package"`
}

// Resolve derives the identifier for the project at path. It never fails:
// an unreadable or malformed manifest is treated as absent.
func Resolve(path string) Identifier {
	return Identifier{
		Name: resolveName(path),
		Hash: PathHash(path),
	}
}

// PathHash fingerprints the raw path string. It is independent of the name
// so two checkouts of the same crate land in different slots.
func PathHash(path string) string {
	sum := md5.Sum([]byte(path))
	return hex.EncodeToString(sum[:])[:hashLen]
}

// IsCargoProject reports whether path contains a Cargo.toml.
func IsCargoProject(path string) bool {
	_, err := os.Stat(filepath.Join(path, ManifestFile))
	return err == nil
}

func resolveName(path string) string {
	if name, ok := manifestName(path); ok {
		return name
	}
	base := filepath.Base(path)
	if base == "." || base == ".." || base == string(filepath.Separator) {
		return FallbackName
	}
	return base
}

// manifestName reads package.name from Cargo.toml. Any failure reports false.
func manifestName(path string) (string, bool) {
	data, err := os.ReadFile(filepath.Join(path, ManifestFile))
	if err != nil {
		return "", false
	}

	var m cargoManifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return "", false
	}
	if m.Package == nil || m.Package.Name == nil || *m.Package.Name == "" {
		return "", false
	}
	return *m.Package.Name, true
}
