package shape

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// Style holds the painting attributes of a shape.
type Style struct {
	FillColor     color.Color // nil disables filling
	FillOpacity   float64
	StrokeColor   color.Color // nil disables stroking
	StrokeWidth   float64
	StrokeOpacity float64
}

// DefaultStyle strokes in black with a width of 1,
// full opacity, and no filling.
var DefaultStyle = Style{
	FillOpacity:   1,
	StrokeColor:   color.NRGBA{A: 0xff},
	StrokeWidth:   1,
	StrokeOpacity: 1,
}

// Set updates the property `prop` with `value`.
// The properties are named after the drawing library setters
// (fillColor, fillOpacity, strokeColor, strokeWidth, strokeOpacity),
// or after the SVG presentation attributes (fill, fill-opacity, stroke,
// stroke-width, stroke-opacity, opacity).
// Colors are given as strings: "none", "#rgb", "#rrggbb", "rgb(r,g,b)"
// or an SVG color keyword. Numbers may be given as strings.
// "opacity" multiplies both the current fill and stroke opacities.
func (s *Style) Set(prop string, value interface{}) error {
	var err error
	switch prop {
	case "fillColor", "fill":
		err = setColor(&s.FillColor, value)
	case "strokeColor", "stroke":
		err = setColor(&s.StrokeColor, value)
	case "fillOpacity", "fill-opacity":
		err = setNumber(&s.FillOpacity, value)
	case "strokeOpacity", "stroke-opacity":
		err = setNumber(&s.StrokeOpacity, value)
	case "strokeWidth", "stroke-width":
		err = setNumber(&s.StrokeWidth, value)
	case "opacity":
		var op float64
		if op, err = parseNumber(value); err == nil {
			s.FillOpacity *= op
			s.StrokeOpacity *= op
		}
	default:
		return fmt.Errorf("%w %q", ErrUnknownProperty, prop)
	}
	if err != nil {
		return fmt.Errorf("%s: %w", prop, err)
	}
	return nil
}

// setColor and setNumber only update `dst` on success

func setColor(dst *color.Color, value interface{}) error {
	c, err := parseColor(value)
	if err != nil {
		return err
	}
	*dst = c
	return nil
}

func setNumber(dst *float64, value interface{}) error {
	f, err := parseNumber(value)
	if err != nil {
		return err
	}
	*dst = f
	return nil
}

// CSS returns the style as the content of an SVG style attribute.
func (s Style) CSS() string {
	var chunks []string
	if s.FillColor == nil {
		chunks = append(chunks, "fill:none")
	} else {
		chunks = append(chunks, "fill:"+formatColor(s.FillColor), "fill-opacity:"+formatNumber(s.FillOpacity))
	}
	if s.StrokeColor == nil {
		chunks = append(chunks, "stroke:none")
	} else {
		chunks = append(chunks, "stroke:"+formatColor(s.StrokeColor),
			"stroke-width:"+formatNumber(s.StrokeWidth),
			"stroke-opacity:"+formatNumber(s.StrokeOpacity))
	}
	return strings.Join(chunks, ";")
}

// ParseStyleDef splits the content of a style attribute
// ("fill:#aa9900; stroke-width:2") into a style definition.
// Malformed declarations are skipped.
func ParseStyleDef(css string) StyleDef {
	out := StyleDef{}
	for _, pair := range strings.Split(css, ";") {
		kv := strings.SplitN(pair, ":", 2)
		if len(kv) != 2 {
			continue
		}
		k, v := strings.TrimSpace(kv[0]), strings.TrimSpace(kv[1])
		if k == "" {
			continue
		}
		out[k] = v
	}
	return out
}

func formatNumber(f float64) string { return strconv.FormatFloat(f, 'f', -1, 64) }

func formatColor(c color.Color) string {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
}

func parseNumber(value interface{}) (float64, error) {
	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case uint64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("%w %q", ErrInvalidValue, v)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("%w %v (%T)", ErrInvalidValue, value, value)
	}
}

// parseColor returns nil for "none".
func parseColor(value interface{}) (color.Color, error) {
	v, ok := value.(string)
	if !ok {
		return nil, fmt.Errorf("%w %v (%T)", ErrInvalidValue, value, value)
	}
	v = strings.ToLower(strings.TrimSpace(v))
	switch {
	case v == "none":
		return nil, nil
	case strings.HasPrefix(v, "#"):
		return parseHexColor(v[1:])
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		return parseRGBColor(strings.TrimSuffix(strings.TrimPrefix(v, "rgb("), ")"))
	}
	if c, ok := colornames.Map[v]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrInvalidValue, v)
}

func parseHexColor(hex string) (color.Color, error) {
	switch len(hex) {
	case 3: // #rgb is a shorthand for #rrggbb
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	case 6:
	default:
		return nil, fmt.Errorf("%w #%s", ErrInvalidValue, hex)
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w #%s", ErrInvalidValue, hex)
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, nil
}

func parseRGBColor(args string) (color.Color, error) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return nil, fmt.Errorf("%w rgb(%s)", ErrInvalidValue, args)
	}
	var rgb [3]uint8
	for i, part := range parts {
		part = strings.TrimSpace(part)
		var (
			f   float64
			err error
		)
		if strings.HasSuffix(part, "%") {
			f, err = strconv.ParseFloat(strings.TrimSuffix(part, "%"), 64)
			f = f * 255 / 100
		} else {
			f, err = strconv.ParseFloat(part, 64)
		}
		if err != nil || f < 0 || f > 255 {
			return nil, fmt.Errorf("%w rgb(%s)", ErrInvalidValue, args)
		}
		rgb[i] = uint8(f + 0.5)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 0xff}, nil
}
