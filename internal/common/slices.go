package common

// IndexBy groups slice positions by a derived key, keeping input order
// within each group.
func IndexBy[S ~[]E, E any, K comparable](s S, key func(E) K) map[K][]int {
	res := make(map[K][]int, len(s))
	for i, e := range s {
		k := key(e)
		res[k] = append(res[k], i)
	}

	return res
}
