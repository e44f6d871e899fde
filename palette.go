package wtree

import (
	"github.com/lucasb-eyer/go-colorful"
)

// Colorset is the colors of a UI in normal state, and with the mouse over it.
type Colorset struct {
	Normal, Hover Colors
}

// Palette holds the default colors for UIs that have no colors from their style.
type Palette struct {
	Regular,
	Primary Colorset
	Disabled,
	Inverse Colors
	ScrollBG,
	ScrollBGHover,
	ScrollVisibleNormal,
	ScrollVisibleHover Colors
	Gutter Colors
}

func hex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic("bad color " + s)
	}
	return c
}

// DefaultPalette returns the standard grey-and-blue colors.
func DefaultPalette() Palette {
	bg := func(s string) Colors {
		return Colors{Background: hex(s)}
	}
	return Palette{
		Regular: Colorset{
			Normal: Colors{
				Text:       hex("#333333"),
				Background: hex("#f8f8f8"),
				Border:     hex("#bbbbbb"),
			},
			Hover: Colors{
				Text:       hex("#222222"),
				Background: hex("#fafafa"),
				Border:     hex("#3272dc"),
			},
		},
		Primary: Colorset{
			Normal: Colors{
				Text:       hex("#ffffff"),
				Background: hex("#007bff"),
				Border:     hex("#007bff"),
			},
			Hover: Colors{
				Text:       hex("#ffffff"),
				Background: hex("#0062cc"),
				Border:     hex("#0062cc"),
			},
		},
		Disabled: Colors{
			Text:       hex("#888888"),
			Background: hex("#f0f0f0"),
			Border:     hex("#e0e0e0"),
		},
		Inverse: Colors{
			Text:       hex("#eeeeee"),
			Background: hex("#3272dc"),
			Border:     hex("#666666"),
		},
		ScrollBG:            bg("#fafafa"),
		ScrollBGHover:       bg("#f0f0f0"),
		ScrollVisibleNormal: bg("#bbbbbb"),
		ScrollVisibleHover:  bg("#999999"),
		Gutter:              bg("#dddddd"),
	}
}

// styleColors returns the colors from the style of e, with unset colors taken from def.
func styleColors(e *Element, def Colors) Colors {
	c := e.Style.Colors
	if c.Text == nil {
		c.Text = def.Text
	}
	if c.Background == nil {
		c.Background = def.Background
	}
	if c.Border == nil {
		c.Border = def.Border
	}
	return c
}
