package assets

import (
	"errors"
	"path/filepath"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibDecoder uploads resources through raylib. It needs an open window.
type RaylibDecoder struct {
	// Root is the directory refs are relative to.
	Root string
}

// DecodeModel loads the model from disk; raylib has no in-memory model
// loader, so data has only served validation at this point.
func (d RaylibDecoder) DecodeModel(ref string, data []byte) (rl.Model, rl.BoundingBox, error) {
	model := rl.LoadModel(filepath.Join(d.Root, filepath.FromSlash(ref)))
	bounds := rl.GetModelBoundingBox(model)
	if model.MeshCount == 0 || bounds.Min == bounds.Max {
		rl.UnloadModel(model)
		return rl.Model{}, rl.BoundingBox{}, errors.New("model has no geometry")
	}
	return model, bounds, nil
}

func (d RaylibDecoder) DecodeTexture(ref string, data []byte) (rl.Texture2D, error) {
	ext := strings.ToLower(filepath.Ext(ref))
	img := rl.LoadImageFromMemory(ext, data, int32(len(data)))
	if img == nil || img.Data == nil {
		return rl.Texture2D{}, errors.New("unsupported image data")
	}
	defer rl.UnloadImage(img)

	texture := rl.LoadTextureFromImage(img)
	if texture.ID == 0 {
		return rl.Texture2D{}, errors.New("texture upload failed")
	}
	return texture, nil
}

func (d RaylibDecoder) UnloadModel(model rl.Model) {
	rl.UnloadModel(model)
}

func (d RaylibDecoder) UnloadTexture(texture rl.Texture2D) {
	rl.UnloadTexture(texture)
}
