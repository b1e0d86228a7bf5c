package reconstruct

// firstSubset returns the indices 0 … k-1.
func firstSubset(k int) []int {
	subset := make([]int, k)
	for i := range subset {
		subset[i] = i
	}
	return subset
}

// lastSubset returns the indices n-k … n-1.
func lastSubset(n, k int) []int {
	subset := make([]int, k)
	for i := range subset {
		subset[i] = n - k + i
	}
	return subset
}

// nextSubset advances subset to the next k-combination of 0 … n-1 in
// lexicographic order. It returns false once subset was the last one.
func nextSubset(subset []int, n int) bool {
	k := len(subset)
	i := k - 1
	for i >= 0 && subset[i] == n-k+i {
		i--
	}
	if i < 0 {
		return false
	}
	subset[i]++
	for j := i + 1; j < k; j++ {
		subset[j] = subset[j-1] + 1
	}
	return true
}
