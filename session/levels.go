package session

import (
	"fmt"
	"io/fs"
	"path"
	"strings"

	"backrooms/model"
)

// LevelSource produces a fresh level. It is called on every reset so edits
// to the maze file show up on the next round.
type LevelSource func() (*model.Level, error)

// FileLevels reads name from fsys on each call. Files ending in .png are
// decoded as color-keyed images, everything else as a text maze.
func FileLevels(fsys fs.FS, name string) LevelSource {
	return func() (*model.Level, error) {
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open level: %w", err)
		}
		defer f.Close()

		var level *model.Level
		if strings.EqualFold(path.Ext(name), ".png") {
			level, err = model.LoadLevelImage(f)
		} else {
			level, err = model.ParseGrid(f)
		}
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", name, err)
		}
		return level, nil
	}
}

// StaticLevel parses an in-memory maze, such as the embedded default.
func StaticLevel(text string) LevelSource {
	return func() (*model.Level, error) {
		return model.ParseGrid(strings.NewReader(text))
	}
}
