package vault

// Schema is the ordered list of dimensions a record kind is grouped by,
// plus value-triggered branch insertions. Branches are data, not code:
// selecting a triggering value at one level splices extra dimensions in
// right after it, so the effective depth of the tree depends on the path
// taken. The document tree has one such branch: the "Laudo" category gets
// a subcategory level before month, every other category goes straight to
// month. Stored paths rely on this shape; do not change it casually.
type Schema struct {
	base     []Dimension
	branches map[Dimension]map[string][]Dimension
}

// DocumentSchema is the navigation schema of the document vault:
// year → category → (subcategory when category is "Laudo") → month.
func DocumentSchema() Schema {
	return Schema{
		base: []Dimension{DimensionYear, DimensionCategory, DimensionMonth},
		branches: map[Dimension]map[string][]Dimension{
			DimensionCategory: {
				CategoryWithSubcats: {DimensionSubcategory},
			},
		},
	}
}

// DimensionsFor returns the effective dimension sequence given the facet
// values selected so far. Branch insertions only apply once their triggering
// segment is actually part of the path.
func (s Schema) DimensionsFor(path []string) []Dimension {
	dims := make([]Dimension, len(s.base))
	copy(dims, s.base)

	for i := 0; i < len(path) && i < len(dims); i++ {
		insert, ok := s.branches[dims[i]][path[i]]
		if !ok {
			continue
		}
		expanded := make([]Dimension, 0, len(dims)+len(insert))
		expanded = append(expanded, dims[:i+1]...)
		expanded = append(expanded, insert...)
		expanded = append(expanded, dims[i+1:]...)
		dims = expanded
	}
	return dims
}

// Depth is the number of levels below the owner for the given path. It can
// grow as the path descends through a branching value.
func (s Schema) Depth(path []string) int {
	return len(s.DimensionsFor(path))
}
