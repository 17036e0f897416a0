package ecs

// intersect returns the ids present in every set, in the dense order of the
// smallest one. A nil set yields nil.
func intersect(sets ...*SparseSet) []entityID {
	if len(sets) == 0 {
		return nil
	}
	smallest := sets[0]
	for _, s := range sets {
		if s == nil {
			return nil
		}
		if s.Len() < smallest.Len() {
			smallest = s
		}
	}

	ids := smallest.ids()
	out := ids[:0]
outer:
	for _, id := range ids {
		for _, s := range sets {
			if s != smallest && !s.Has(id) {
				continue outer
			}
		}
		out = append(out, id)
	}
	return out
}
