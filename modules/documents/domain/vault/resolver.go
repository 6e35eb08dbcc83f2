package vault

import "sort"

type NodeType string

const (
	NodeFolder NodeType = "folder"
	NodeFile   NodeType = "file"
)

// ViewNode is one entry of the current folder listing: either a child folder
// with the number of records underneath it, or a leaf record when the path is
// fully specified.
type ViewNode struct {
	Type   NodeType
	Value  string
	Count  int
	Record Record
}

// ResolveView computes the folder listing at the given path. Records are
// filtered by every selected segment; below full depth the remainder is
// grouped by the next dimension, at full depth each remaining record becomes
// a file node. An empty result is an empty folder, never an error.
func ResolveView(records []Record, path []string, schema Schema) []ViewNode {
	dims := schema.DimensionsFor(path)
	if len(path) > len(dims) {
		return nil
	}

	matched := make([]Record, 0, len(records))
	matchedFacets := make([]Facets, 0, len(records))
	for _, r := range records {
		f := Classify(r)
		ok := true
		for i, segment := range path {
			if f.Value(dims[i]) != segment {
				ok = false
				break
			}
		}
		if ok {
			matched = append(matched, r)
			matchedFacets = append(matchedFacets, f)
		}
	}

	if len(path) == len(dims) {
		nodes := make([]ViewNode, 0, len(matched))
		for _, r := range matched {
			nodes = append(nodes, ViewNode{Type: NodeFile, Record: r})
		}
		return nodes
	}

	next := dims[len(path)]
	counts := make(map[string]int)
	sortKeys := make(map[string]string)
	order := make([]string, 0)
	for i := range matched {
		f := matchedFacets[i]
		value := f.Value(next)
		if _, seen := counts[value]; !seen {
			order = append(order, value)
			sortKeys[value] = f.sortKey(next)
		}
		counts[value]++
	}

	// Years and months are fixed-width numeric keys: newest first. Category
	// and subcategory keep first-encounter order, matching the legacy tree.
	if next == DimensionYear || next == DimensionMonth {
		sort.SliceStable(order, func(i, j int) bool {
			return sortKeys[order[i]] > sortKeys[order[j]]
		})
	}

	nodes := make([]ViewNode, 0, len(order))
	for _, value := range order {
		nodes = append(nodes, ViewNode{Type: NodeFolder, Value: value, Count: counts[value]})
	}
	return nodes
}
