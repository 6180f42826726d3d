package load

import (
	"sort"

	"github.com/vektah/gqlparser/v2/ast"
)

// sortByPosition orders names by the source position of their definition,
// falling back to source name then line then name for definitions that
// share a position (synthesized or extended types). gqlparser exposes
// schema.Types as a map, so this is how document order is recovered.
func sortByPosition(names []string, types map[string]*ast.Definition) {
	sort.SliceStable(names, func(i, j int) bool {
		a, b := types[names[i]], types[names[j]]
		ap, bp := a.Position, b.Position
		if ap == nil || bp == nil {
			return names[i] < names[j]
		}
		if ap.Src != bp.Src {
			an, bn := "", ""
			if ap.Src != nil {
				an = ap.Src.Name
			}
			if bp.Src != nil {
				bn = bp.Src.Name
			}
			if an != bn {
				return an < bn
			}
		}
		if ap.Line != bp.Line {
			return ap.Line < bp.Line
		}
		return names[i] < names[j]
	})
}
