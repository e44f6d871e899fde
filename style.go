package wtree

import (
	"image"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Colors used for drawing an element. nil means nothing is drawn.
type Colors struct {
	Text,
	Background,
	Border color.Color
}

// Style is the resolved, element-scoped snapshot of style properties, valid for a layout and draw cycle.
type Style struct {
	Colors  Colors
	Font    Font
	Padding Space
	Border  int
	Rounded bool
	Spacing int // Between kids of linear containers.
	Halign  Halign
	Valign  Valign
	MinSize image.Point // Zero coordinates are not set.
	MaxSize image.Point // Zero coordinates are not set.
}

// PropertyKind groups style properties by what they invalidate.
type PropertyKind byte

const (
	PropColor   = PropertyKind(iota) // Colors, needs a draw.
	PropAlign                        // Alignment, needs a new arrangement.
	PropFont                         // Font, needs a new measurement.
	PropSpacing                      // Padding, border, spacing, needs a new measurement.
	PropSize                         // Min and max size, needs a new measurement.
	PropCustom                       // Properties not in Style, handled by StyleWatchers.
)

// PropertyKinds is a set of PropertyKind.
type PropertyKinds uint8

func (s PropertyKinds) Has(k PropertyKind) bool {
	return s&(1<<k) != 0
}

func (s *PropertyKinds) Add(k PropertyKind) {
	*s |= 1 << k
}

// Property names known to resolveStyle.
const (
	PropertyColor           = "color"
	PropertyBackgroundColor = "background-color"
	PropertyBorderColor     = "border-color"
	PropertyFont            = "font"
	PropertyPadding         = "padding"
	PropertyBorderWidth     = "border-width"
	PropertyBorderRounded   = "border-rounded"
	PropertySpacing         = "spacing"
	PropertyTextAlign       = "text-align"
	PropertyVerticalAlign   = "vertical-align"
	PropertyMinSize         = "min-size"
	PropertyMaxSize         = "max-size"
)

// PropertyKindOf returns the kind of a property name. Unknown names are PropCustom.
func PropertyKindOf(name string) PropertyKind {
	switch name {
	case PropertyColor, PropertyBackgroundColor, PropertyBorderColor:
		return PropColor
	case PropertyTextAlign, PropertyVerticalAlign:
		return PropAlign
	case PropertyFont:
		return PropFont
	case PropertyPadding, PropertyBorderWidth, PropertyBorderRounded, PropertySpacing:
		return PropSpacing
	case PropertyMinSize, PropertyMaxSize:
		return PropSize
	}
	return PropCustom
}

// StyleResolver returns style property values for elements.
// Implementations must be safe for concurrent reads.
type StyleResolver interface {
	// PropertyValue returns the value of property name for e, or fallback if it is not set.
	PropertyValue(e *Element, name string, fallback interface{}) interface{}
}

// resolveStyle builds the style snapshot for e. Color and font are inherited from parent.
func resolveStyle(r StyleResolver, e *Element, parent *Style, defaultFont Font) Style {
	var s Style
	if parent != nil {
		s.Colors.Text = parent.Colors.Text
		s.Font = parent.Font
	}
	if s.Font == nil {
		s.Font = defaultFont
	}
	if r == nil {
		return s
	}
	get := func(name string, fallback interface{}) interface{} {
		return r.PropertyValue(e, name, fallback)
	}
	s.Colors.Text = toColor(get(PropertyColor, s.Colors.Text))
	s.Colors.Background = toColor(get(PropertyBackgroundColor, nil))
	s.Colors.Border = toColor(get(PropertyBorderColor, nil))
	if f, ok := get(PropertyFont, s.Font).(Font); ok && f != nil {
		s.Font = f
	}
	s.Padding = toSpace(get(PropertyPadding, Space{}))
	s.Border, _ = get(PropertyBorderWidth, 0).(int)
	s.Rounded, _ = get(PropertyBorderRounded, false).(bool)
	s.Spacing, _ = get(PropertySpacing, 0).(int)
	s.Halign, _ = get(PropertyTextAlign, HalignLeft).(Halign)
	s.Valign, _ = get(PropertyVerticalAlign, ValignTop).(Valign)
	s.MinSize, _ = get(PropertyMinSize, image.ZP).(image.Point)
	s.MaxSize, _ = get(PropertyMaxSize, image.ZP).(image.Point)
	return s
}

// changedKinds returns the property kinds that differ between two snapshots.
// Colors and fonts of types that cannot be compared always count as changed.
func changedKinds(a, b Style) (kinds PropertyKinds) {
	if !same(a.Colors.Text, b.Colors.Text) || !same(a.Colors.Background, b.Colors.Background) || !same(a.Colors.Border, b.Colors.Border) {
		kinds.Add(PropColor)
	}
	if a.Halign != b.Halign || a.Valign != b.Valign {
		kinds.Add(PropAlign)
	}
	if !same(a.Font, b.Font) {
		kinds.Add(PropFont)
	}
	if a.Padding != b.Padding || a.Border != b.Border || a.Rounded != b.Rounded || a.Spacing != b.Spacing {
		kinds.Add(PropSpacing)
	}
	if a.MinSize != b.MinSize || a.MaxSize != b.MaxSize {
		kinds.Add(PropSize)
	}
	return
}

// toColor accepts colors, and hex strings like "#3272dc".
// Invalid strings result in nil, no color.
func toColor(v interface{}) color.Color {
	switch c := v.(type) {
	case nil:
		return nil
	case string:
		cc, err := colorful.Hex(c)
		if err != nil {
			return nil
		}
		return cc
	case color.Color:
		return c
	}
	return nil
}

// toSpace accepts a Space, an int for all sides, or an image.Point for horizontal and vertical.
func toSpace(v interface{}) Space {
	switch s := v.(type) {
	case Space:
		return s
	case int:
		return SpaceXY(s, s)
	case image.Point:
		return SpaceXY(s.X, s.Y)
	}
	return Space{}
}
