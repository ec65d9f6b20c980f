// Package fsutil provides the host-filesystem collaborators the ggtr
// container relies on: an existence probe and a best-effort rename.
// Both are thin wrappers over os, kept in their own package so the
// container core treats the filesystem as an external, swappable
// collaborator rather than reaching for os directly everywhere.
package fsutil

import "os"

// Exists reports whether path names a regular file. Directories,
// sockets, and anything else os.Stat can see but that isn't a regular
// file are reported as not existing.
func Exists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}

// Rename performs a best-effort rename of from to to.
func Rename(from, to string) error {
	return os.Rename(from, to)
}

// Remove deletes the file at path.
func Remove(path string) error {
	return os.Remove(path)
}
