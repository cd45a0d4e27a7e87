package selector

// Paths returns every combination that picks one option from each choice,
// in order. Paths([][]T{{1, 2}, {3}, {4, 5}}) yields
// [1 3 4] [2 3 4] [1 3 5] [2 3 5].
func Paths[T any](choices [][]T) [][]T {
	result := [][]T{{}}
	for _, choice := range choices {
		next := make([][]T, 0, len(result)*len(choice))
		for _, option := range choice {
			for _, path := range result {
				p := make([]T, len(path), len(path)+1)
				copy(p, path)
				next = append(next, append(p, option))
			}
		}
		result = next
	}
	return result
}

// lcs returns the longest common subsequence of a and b. Two elements are
// considered equal when sel accepts them; the value sel returns goes into
// the result in place of both.
func lcs[T any](a, b []T, sel func(x, y T) (T, bool)) []T {
	lengths := make([][]int, len(a)+1)
	for i := range lengths {
		lengths[i] = make([]int, len(b)+1)
	}
	type selection struct {
		value T
		ok    bool
	}
	selections := make([][]selection, len(a))
	for i := range a {
		selections[i] = make([]selection, len(b))
		for j := range b {
			v, ok := sel(a[i], b[j])
			selections[i][j] = selection{value: v, ok: ok}
			if ok {
				lengths[i+1][j+1] = lengths[i][j] + 1
			} else {
				lengths[i+1][j+1] = max(lengths[i+1][j], lengths[i][j+1])
			}
		}
	}

	var result []T
	for i, j := len(a)-1, len(b)-1; i >= 0 && j >= 0; {
		if s := selections[i][j]; s.ok {
			result = append(result, s.value)
			i--
			j--
			continue
		}
		if lengths[i+1][j] > lengths[i][j+1] {
			j--
		} else {
			i--
		}
	}
	for l, r := 0, len(result)-1; l < r; l, r = l+1, r-1 {
		result[l], result[r] = result[r], result[l]
	}
	return result
}

// chunks takes leading elements from both queues until done holds for each
// and returns the possible interleavings of the two taken runs.
func chunks[T any](queue1, queue2 *[]T, done func([]T) bool) [][]T {
	var chunk1, chunk2 []T
	for len(*queue1) > 0 && !done(*queue1) {
		chunk1 = append(chunk1, (*queue1)[0])
		*queue1 = (*queue1)[1:]
	}
	for len(*queue2) > 0 && !done(*queue2) {
		chunk2 = append(chunk2, (*queue2)[0])
		*queue2 = (*queue2)[1:]
	}

	switch {
	case len(chunk1) == 0 && len(chunk2) == 0:
		return nil
	case len(chunk1) == 0:
		return [][]T{chunk2}
	case len(chunk2) == 0:
		return [][]T{chunk1}
	}
	first := make([]T, 0, len(chunk1)+len(chunk2))
	first = append(append(first, chunk1...), chunk2...)
	second := make([]T, 0, len(chunk1)+len(chunk2))
	second = append(append(second, chunk2...), chunk1...)
	return [][]T{first, second}
}
