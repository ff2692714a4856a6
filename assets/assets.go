// Package assets embeds the bundled scene files.
package assets

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/automoto/rigid2d/shared/leveldata"
)

const levelDir = "levels"

var (
	//go:embed all:levels
	assetFS embed.FS
)

type LevelLoader struct {
	fsys fs.FS
}

// NewLevelLoader reads the embedded levels.
func NewLevelLoader() *LevelLoader {
	return &LevelLoader{fsys: assetFS}
}

// NewDirLevelLoader reads levels from a directory on disk instead, so scenes
// can be edited without a rebuild.
func NewDirLevelLoader(fsys fs.FS) *LevelLoader {
	return &LevelLoader{fsys: fsys}
}

// LoadLevels parses every .tmx file in the levels directory and returns them
// keyed by name, plus the names in sorted order.
func (l *LevelLoader) LoadLevels() (map[string]*leveldata.Scene, []string, error) {
	return leveldata.LoadAllScenes(l.fsys, levelDir)
}

func (l *LevelLoader) MustLoadLevels() (map[string]*leveldata.Scene, []string) {
	levels, names, err := l.LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("Failed to load levels: %v", err))
	}
	return levels, names
}
