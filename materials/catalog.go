package materials

import (
	"moonlit-scene/core"
	"moonlit-scene/scene"
)

// RoleColors is the base color of every role.
var RoleColors = map[scene.Role]core.Color{
	scene.RoleMoon:    core.ColorHex(0xffff00),
	scene.RoleTrunk:   core.ColorHex(0x8B4513),
	scene.RoleBranch:  core.ColorHex(0x8B4513),
	scene.RoleCrown:   core.ColorHex(0x006400),
	scene.RoleHouse:   core.ColorHex(0xffffff),
	scene.RoleDoor:    core.ColorHex(0x8B4513),
	scene.RoleWindow:  core.ColorHex(0x0000ff),
	scene.RoleChimney: core.ColorHex(0xffffff),
	scene.RoleRoof:    core.ColorHex(0x8B0000),
}

// FlatOnlyRoles keep their Gouraud material whatever style is active.
var FlatOnlyRoles = []scene.Role{
	scene.RoleHouse,
	scene.RoleDoor,
	scene.RoleWindow,
	scene.RoleChimney,
	scene.RoleRoof,
}

// Catalog holds one pre-built material per (role, style) pair.
type Catalog struct {
	table    map[scene.Role]map[scene.ShadingStyle]*scene.Material
	flatOnly map[scene.Role]bool
}

// Option customises a Catalog.
type Option func(*Catalog)

// WithFlatOnly replaces the set of roles exempt from restyling.
func WithFlatOnly(roles ...scene.Role) Option {
	return func(c *Catalog) {
		c.flatOnly = make(map[scene.Role]bool, len(roles))
		for _, r := range roles {
			c.flatOnly[r] = true
		}
	}
}

// NewCatalog allocates every material up front. By default FlatOnlyRoles are
// exempt from restyling.
func NewCatalog(opts ...Option) *Catalog {
	c := &Catalog{
		table: make(map[scene.Role]map[scene.ShadingStyle]*scene.Material, len(RoleColors)),
	}
	WithFlatOnly(FlatOnlyRoles...)(c)
	for _, opt := range opts {
		opt(c)
	}

	for _, role := range scene.AllRoles() {
		byStyle := make(map[scene.ShadingStyle]*scene.Material, 3)
		for _, style := range scene.AllShadingStyles() {
			byStyle[style] = scene.NewMaterial(role, style, RoleColors[role])
		}
		c.table[role] = byStyle
	}
	return c
}

// MaterialFor returns the material of role under style. The result is the
// same pointer on every call.
func (c *Catalog) MaterialFor(role scene.Role, style scene.ShadingStyle) *scene.Material {
	m, ok := c.table[role][style]
	if !ok {
		panic("materials: no material for " + role.String() + "/" + style.String())
	}
	return m
}

// Resolve is the material a role should wear while style is active, taking
// the flat-only exemption into account.
func (c *Catalog) Resolve(role scene.Role, style scene.ShadingStyle) *scene.Material {
	if c.flatOnly[role] {
		return c.MaterialFor(role, scene.ShadingGouraud)
	}
	return c.MaterialFor(role, style)
}

// IsFlatOnly reports whether role ignores style changes.
func (c *Catalog) IsFlatOnly(role scene.Role) bool {
	return c.flatOnly[role]
}

// Len is the number of materials held.
func (c *Catalog) Len() int {
	n := 0
	for _, byStyle := range c.table {
		n += len(byStyle)
	}
	return n
}
