package bars

// Palette holds CSS/hex colors for the SVG sinks and lipgloss colors for the
// terminal sink.
type Palette struct {
	Background string `toml:"background"`
	Primary    string `toml:"primary"`
	Secondary  string `toml:"secondary"`
	Neutral    string `toml:"neutral"`
}

// DefaultPalette is black background, red primary, green secondary and
// white for everything else.
func DefaultPalette() Palette {
	return Palette{
		Background: "#000000",
		Primary:    "#ff0000",
		Secondary:  "#00ff00",
		Neutral:    "#ffffff",
	}
}

// Color returns the fill for a role.
func (p Palette) Color(r Role) string {
	switch r {
	case RolePrimary:
		return p.Primary
	case RoleSecondary:
		return p.Secondary
	}
	return p.Neutral
}

// withDefaults fills empty entries from [DefaultPalette].
func (p Palette) withDefaults() Palette {
	d := DefaultPalette()
	if p.Background == "" {
		p.Background = d.Background
	}
	if p.Primary == "" {
		p.Primary = d.Primary
	}
	if p.Secondary == "" {
		p.Secondary = d.Secondary
	}
	if p.Neutral == "" {
		p.Neutral = d.Neutral
	}
	return p
}
