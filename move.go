package ggtr

import "github.com/GRGSIBERIA/ggtr/fsutil"

// MoveDatabase renames the container to toPath. If a file already
// exists at toPath, it is displaced to toPath+".bak" first (any prior
// ".bak" sibling is removed before that). This is a rename-based swap,
// not a copy: source and destination must lie on the same host
// filesystem.
func (fs *FileSystem) MoveDatabase(toPath string) error {
	if fsutil.Exists(toPath) {
		bak := toPath + ".bak"
		if fsutil.Exists(bak) {
			if err := fsutil.Remove(bak); err != nil {
				return err
			}
		}
		if err := fsutil.Rename(toPath, bak); err != nil {
			return err
		}
	}

	if err := fsutil.Rename(fs.path, toPath); err != nil {
		return err
	}

	fs.path = toPath
	return nil
}
