package stock

// PerTermCount returns how many images to request from each provider for
// each search term. This deliberately over-requests slightly: duplicates
// across terms are likely and the total cap is enforced in Select, not
// per request.
func PerTermCount(maxTotal, minPerTerm, termCount int) int {
	if termCount < 1 {
		termCount = 1
	}
	n := maxTotal / termCount
	if n < minPerTerm {
		n = minPerTerm
	}
	return n
}

// Interleave merges provider result lists index by index, alternating
// sources for variety rather than exhausting one provider first.
func Interleave(lists ...[]Image) []Image {
	longest := 0
	total := 0
	for _, list := range lists {
		total += len(list)
		if len(list) > longest {
			longest = len(list)
		}
	}

	merged := make([]Image, 0, total)
	for i := 0; i < longest; i++ {
		for _, list := range lists {
			if i < len(list) {
				merged = append(merged, list[i])
			}
		}
	}
	return merged
}

// Select walks candidates in order, keeps the first occurrence of each
// (source, id) pair, and stops as soon as limit images are kept. Remaining
// candidates are discarded, so candidates from earlier terms dominate
// the selection.
func Select(candidates []Image, limit int) []Image {
	seen := make(map[string]struct{}, limit)
	selected := make([]Image, 0, limit)

	for _, img := range candidates {
		if _, ok := seen[img.Key()]; ok {
			continue
		}
		seen[img.Key()] = struct{}{}
		selected = append(selected, img)
		if len(selected) >= limit {
			break
		}
	}
	return selected
}
