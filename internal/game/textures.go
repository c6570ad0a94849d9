package game

import (
	"sort"

	"github.com/sirupsen/logrus"

	"chosenoffset.com/raycaster/internal/logger"
	"chosenoffset.com/raycaster/internal/placeholders"
	"chosenoffset.com/raycaster/internal/render"
)

// LoadTextures loads every named texture from its file, falling back to the
// generated placeholder when the file is unset or unreadable. A nil loader
// uses placeholders only.
func LoadTextures(r render.Renderer, loader render.ResourceLoader, files map[string]string) map[string]render.Image {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)

	textures := make(map[string]render.Image, len(names))
	for _, name := range names {
		path := files[name]
		if loader != nil && path != "" {
			img, err := loader.LoadImage(path)
			if err == nil {
				logger.Log.WithFields(logrus.Fields{"texture": name, "file": path}).Debug("Loaded texture")
				textures[name] = img
				continue
			}
			logger.Log.WithFields(logrus.Fields{"texture": name, "file": path}).
				WithError(err).Warn("Texture file unavailable, using placeholder")
		}

		img, ok := placeholders.Generate(name)
		if !ok {
			logger.Log.WithField("texture", name).Warn("No placeholder pattern for texture")
		}
		textures[name] = r.NewImageFromImage(img)
	}
	return textures
}
