package render

import (
	"backrooms/engine"
	"backrooms/model"
)

// TextureHandler picks the wall texture for the tile a ray hit.
type TextureHandler interface {
	TextureAt(tile model.Tile) engine.Texture
}

// TileTextures maps tiles to textures, falling back to Default.
type TileTextures struct {
	Default engine.Texture
	ByTile  map[model.Tile]engine.Texture
}

// NewTileTextures builds the handler from the loaded resources.
// Goal cells get their own texture when one was configured.
func NewTileTextures(res *engine.Resources) *TileTextures {
	t := &TileTextures{
		Default: res.Wall,
		ByTile:  map[model.Tile]engine.Texture{},
	}
	if res.Goal != nil {
		t.ByTile[model.TileGoal] = res.Goal
	}
	return t
}

func (t *TileTextures) TextureAt(tile model.Tile) engine.Texture {
	if tex, ok := t.ByTile[tile]; ok {
		return tex
	}
	return t.Default
}
