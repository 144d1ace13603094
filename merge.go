// File: hoplite/merge.go
package hoplite

// Fallback merges two nodes where primary has higher priority:
//
//   - an Undefined primary yields the secondary;
//   - two maps union their keys, recursing on keys present in both;
//   - anything else keeps the primary and discards the secondary.
//
// Only maps merge structurally. A primary list or scalar replaces the
// secondary wholesale even when the secondary is a map, so a source
// can override a whole subtree by writing a scalar over it.
//
// Key order in a merged map is primary's keys first, then secondary's
// unique keys, each group in its original order. The merged map keeps
// the primary's origin; leaves keep the origin of whichever source won.
func Fallback(primary, secondary Node) Node {
	switch {
	case primary.kind == KindUndefined:
		return secondary
	case primary.kind == KindMap && secondary.kind == KindMap:
		entries := make([]MapEntry, 0, len(primary.keys)+len(secondary.keys))
		for _, k := range primary.keys {
			pv := primary.fields[k]
			if sv, ok := secondary.fields[k]; ok {
				entries = append(entries, Entry(k, Fallback(pv, sv)))
			} else {
				entries = append(entries, Entry(k, pv))
			}
		}
		for _, k := range secondary.keys {
			if _, ok := primary.fields[k]; !ok {
				entries = append(entries, Entry(k, secondary.fields[k]))
			}
		}
		return MapNode(primary.origin, entries...)
	default:
		return primary
	}
}

// mergeNodes folds roots ordered from highest to lowest priority into
// one tree: fold(fold(n0, n1), n2)...
func mergeNodes(roots []Node) Node {
	merged := UndefinedNode("")
	for _, n := range roots {
		merged = Fallback(merged, n)
	}
	return merged
}
