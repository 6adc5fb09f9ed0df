// Package filesystem provides path canonicalization and data directory
// helpers.
package filesystem

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// OwnerReadWriteExec is the permission mode used for directories created by
// slingshot.
const OwnerReadWriteExec = 0o700

// GetUserHomeDirectory returns the user home directory if one is set.
func GetUserHomeDirectory() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if usr, err := user.Current(); err == nil {
		return usr.HomeDir
	}
	return ""
}

// GetCanonicalPath returns an os-specific full path:
// - replace ~ with the user's home dir path
// - expand any ${vars} or $vars
// - resolve relative paths
func GetCanonicalPath(p string) string {
	if strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		if home := GetUserHomeDirectory(); home != "" {
			p = home + p[1:]
		}
	}
	return filepath.Clean(os.ExpandEnv(p))
}

// ExistOrCreate creates the given directory and any missing parents.
func ExistOrCreate(dir string) error {
	return os.MkdirAll(GetCanonicalPath(dir), OwnerReadWriteExec)
}
