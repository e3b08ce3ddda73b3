package scanner

import (
	"fmt"
	"strings"
)

// Collision is a symbol base shared by more than one asset.
type Collision struct {
	Symbol string
	URIs   []string
}

func (c Collision) String() string {
	return fmt.Sprintf("%s <- %s", c.Symbol, strings.Join(c.URIs, ", "))
}

// DetectCollisions reports every symbol base that two or more assets sanitize
// to, ordered by first occurrence.
func DetectCollisions(assets []Asset) []Collision {
	index := make(map[string]int)
	var groups []Collision
	for _, a := range assets {
		i, ok := index[a.SymbolBase]
		if !ok {
			i = len(groups)
			index[a.SymbolBase] = i
			groups = append(groups, Collision{Symbol: a.SymbolBase})
		}
		groups[i].URIs = append(groups[i].URIs, a.URI)
	}

	var out []Collision
	for _, g := range groups {
		if len(g.URIs) > 1 {
			out = append(out, g)
		}
	}
	return out
}

// CollisionError is returned when colliding symbols are not allowed.
type CollisionError struct {
	Collisions []Collision
}

func (e *CollisionError) Error() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d symbol collision(s) after sanitizing file names:", len(e.Collisions))
	for _, c := range e.Collisions {
		sb.WriteString("\n  ")
		sb.WriteString(c.String())
	}
	return sb.String()
}
