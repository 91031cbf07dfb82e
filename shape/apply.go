package shape

import (
	"fmt"
	"sort"

	"github.com/benoitkugler/xrxsvg"
)

// StyleDef maps style properties (see Style.Set) to their values.
// A nested definition, under the keys "hoverable", "selectable" or
// "modifiable", applies to the corresponding state style.
type StyleDef map[string]interface{}

// ApplyStyle applies the style definition to each shape.
// As the drawing library does, each shape gets a fresh style, built from
// DefaultStyle and the properties of `def`: properties not listed in
// `def` are reset. The "opacity" property is applied last, so that it
// scales the explicit fill and stroke opacities. Groups also apply the definition to their children.
// Nil shapes are skipped.
// A shape is left unchanged if one of the properties can't be applied,
// and the error is returned.
func ApplyStyle(def StyleDef, shapes ...Shape) error {
	for _, s := range shapes {
		if s == nil {
			continue
		}
		st, err := def.build(s.Styling())
		if err != nil {
			xrxsvg.Logger().Error("applying style failed", "shape", s.Kind(), "err", err)
			return err
		}
		*s.Styling() = st
		if g, ok := s.(*Group); ok {
			if err := ApplyStyle(def, g.Children...); err != nil {
				return err
			}
		}
	}
	return nil
}

// build returns the updated copy of `current`
func (def StyleDef) build(current *Styled) (Styled, error) {
	out := current.clone()
	out.Style = DefaultStyle
	for _, prop := range def.keys() {
		value := def[prop]
		nested, isNested := asStyleDef(value)
		if !isNested {
			if err := out.Style.Set(prop, value); err != nil {
				return Styled{}, err
			}
			continue
		}
		state := out.state(prop)
		if state == nil {
			return Styled{}, fmt.Errorf("%w %q", ErrUnknownProperty, prop)
		}
		st, err := nested.style()
		if err != nil {
			return Styled{}, fmt.Errorf("%s: %w", prop, err)
		}
		*state = &st
	}
	return out, nil
}

// style builds a style from DefaultStyle. Nested definitions are not allowed.
func (def StyleDef) style() (Style, error) {
	st := DefaultStyle
	for _, prop := range def.keys() {
		if err := st.Set(prop, def[prop]); err != nil {
			return Style{}, err
		}
	}
	return st, nil
}

// keys returns the properties in application order: sorted, except for
// "opacity" which scales the opacities set by the other properties
// and comes last.
func (def StyleDef) keys() []string {
	keys := sortedKeys(def)
	for i, k := range keys {
		if k == "opacity" {
			keys = append(append(keys[:i:i], keys[i+1:]...), k)
			break
		}
	}
	return keys
}

// sortedKeys makes the application order, and thus the reported error, deterministic.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func (s *Styled) state(name string) **Style {
	switch name {
	case "hoverable":
		return &s.Hoverable
	case "selectable":
		return &s.Selectable
	case "modifiable":
		return &s.Modifiable
	default:
		return nil
	}
}

func asStyleDef(value interface{}) (StyleDef, bool) {
	switch v := value.(type) {
	case StyleDef:
		return v, true
	case map[string]interface{}:
		return StyleDef(v), true
	default:
		return nil, false
	}
}
