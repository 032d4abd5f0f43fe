package models

import "strings"

// IconName tags a service with a decorative glyph. The set is closed; names outside
// it are stored verbatim and fall back to IconBox when rendered.
type IconName string

const (
	IconPalette IconName = "Palette"
	IconLayout  IconName = "Layout"
	IconZap     IconName = "Zap"
	IconBrush   IconName = "Brush"
	IconBox     IconName = "Box"
)

// KnownIcons lists the icon names the site knows how to render, in menu order.
var KnownIcons = []IconName{IconPalette, IconLayout, IconZap, IconBrush, IconBox}

// Known reports whether the icon is part of the enumerated set.
func (i IconName) Known() bool {
	for _, k := range KnownIcons {
		if k == i {
			return true
		}
	}
	return false
}

// ParseIconName matches a name case-insensitively against the known set.
// An empty name yields IconBox, which is what newly added services get by default.
func ParseIconName(name string) IconName {
	name = strings.TrimSpace(name)
	if name == "" {
		return IconBox
	}
	for _, k := range KnownIcons {
		if strings.EqualFold(string(k), name) {
			return k
		}
	}
	return IconName(name)
}
