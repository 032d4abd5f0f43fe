package api

import "github.com/starterkart/starterkart-backend/internal/models"

const fallbackGlyph = "box"

// iconGlyphs maps service icon tags to the icon-set names the frontend renders.
var iconGlyphs = map[models.IconName]string{
	models.IconPalette: "palette",
	models.IconLayout:  "layout",
	models.IconZap:     "zap",
	models.IconBrush:   "brush",
	models.IconBox:     "box",
}

// glyphFor resolves an icon tag. Unknown tags render as a box.
func glyphFor(icon models.IconName) string {
	if g, ok := iconGlyphs[icon]; ok {
		return g
	}
	return fallbackGlyph
}

func renderService(s models.Service) ServiceView {
	return ServiceView{Service: s, Glyph: glyphFor(s.Icon)}
}

func renderServices(services []models.Service) []ServiceView {
	out := make([]ServiceView, len(services))
	for i, s := range services {
		out[i] = renderService(s)
	}
	return out
}
