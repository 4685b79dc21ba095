package expand

// dedupe removes every element after its first occurrence, preserving the
// relative order of the survivors.
func dedupe(frames []int64) []int64 {
	seen := make(map[int64]struct{}, len(frames))
	out := make([]int64, 0, len(frames))
	for _, f := range frames {
		if _, ok := seen[f]; ok {
			continue
		}
		seen[f] = struct{}{}
		out = append(out, f)
	}
	return out
}
