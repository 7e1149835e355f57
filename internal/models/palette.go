package models

import "sort"

// PaletteKind tags which artwork color schema a deployment produced.
type PaletteKind string

const (
	// PaletteObjects maps each depicted entity to its dominant color.
	PaletteObjects PaletteKind = "object"
	// PaletteColors is a flat ordered list of color names.
	PaletteColors PaletteKind = "color"
)

// ArtworkPalette is a tagged union over the two schema variants. Exactly one
// of Objects or Colors is populated; downstream rendering switches on Kind
// instead of probing field presence.
type ArtworkPalette struct {
	Objects map[string]string `json:"object,omitempty"`
	Colors  []string          `json:"color,omitempty"`
}

func (p ArtworkPalette) Kind() PaletteKind {
	if len(p.Objects) > 0 {
		return PaletteObjects
	}
	return PaletteColors
}

func (p ArtworkPalette) Empty() bool {
	return len(p.Objects) == 0 && len(p.Colors) == 0
}

// ColorNames returns the palette's color names in a deterministic order:
// list order for the color variant, entity-key order for the object variant.
// Duplicates are collapsed.
func (p ArtworkPalette) ColorNames() []string {
	var raw []string
	switch p.Kind() {
	case PaletteObjects:
		keys := make([]string, 0, len(p.Objects))
		for k := range p.Objects {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			raw = append(raw, p.Objects[k])
		}
	default:
		raw = p.Colors
	}

	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, c := range raw {
		if c == "" {
			continue
		}
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
