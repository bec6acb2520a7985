package scene

import (
	"fmt"
	"strings"

	"moonlit-scene/core"
)

// ShadingStyle selects the illumination model used for lit surfaces.
type ShadingStyle int

const (
	ShadingGouraud ShadingStyle = iota // per-vertex diffuse (default)
	ShadingPhong                       // per-fragment diffuse + specular
	ShadingToon                        // banded diffuse
)

var shadingStyleNames = [...]string{"gouraud", "phong", "toon"}

// AllShadingStyles lists every style in declaration order.
func AllShadingStyles() []ShadingStyle {
	return []ShadingStyle{ShadingGouraud, ShadingPhong, ShadingToon}
}

func (s ShadingStyle) String() string {
	if s < 0 || int(s) >= len(shadingStyleNames) {
		return fmt.Sprintf("ShadingStyle(%d)", int(s))
	}
	return shadingStyleNames[s]
}

// ParseShadingStyle accepts the names returned by String, case-insensitively.
func ParseShadingStyle(name string) (ShadingStyle, error) {
	for i, n := range shadingStyleNames {
		if strings.EqualFold(n, name) {
			return ShadingStyle(i), nil
		}
	}
	return 0, fmt.Errorf("unknown shading style %q", name)
}

// Material describes surface appearance for one role under one shading style.
// Materials are shared between nodes and never mutated after construction.
type Material struct {
	Name      string
	Role      Role
	Style     ShadingStyle
	Color     core.Color
	Specular  core.Color // Phong highlight color; black for other styles
	Shininess float32    // Phong exponent
	ToonBands int        // number of diffuse steps for Toon
}

// NewMaterial builds the material for role under style with the given base color.
func NewMaterial(role Role, style ShadingStyle, color core.Color) *Material {
	m := &Material{
		Name:  role.String() + "/" + style.String(),
		Role:  role,
		Style: style,
		Color: color,
	}
	switch style {
	case ShadingPhong:
		m.Specular = core.ColorHex(0x111111)
		m.Shininess = 30
	case ShadingToon:
		m.ToonBands = 3
	}
	return m
}
