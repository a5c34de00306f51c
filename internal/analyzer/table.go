package analyzer

// frequencyTable counts accesses over the inclusive bucket range [first, last].
// Counts are stored 0-based; bucket b lives at counts[b-first].
type frequencyTable struct {
	first  int
	counts []int
}

func newFrequencyTable(first, last int) *frequencyTable {
	return &frequencyTable{
		first:  first,
		counts: make([]int, last-first+1),
	}
}

func (t *frequencyTable) last() int {
	return t.first + len(t.counts) - 1
}

func (t *frequencyTable) contains(bucket int) bool {
	return bucket >= t.first && bucket <= t.last()
}

// add increments bucket and reports whether it was inside the table.
func (t *frequencyTable) add(bucket int) bool {
	if !t.contains(bucket) {
		return false
	}
	t.counts[bucket-t.first]++
	return true
}

func (t *frequencyTable) count(bucket int) int {
	if !t.contains(bucket) {
		return 0
	}
	return t.counts[bucket-t.first]
}

func (t *frequencyTable) total() int {
	total := 0
	for _, n := range t.counts {
		total += n
	}
	return total
}

// snapshot returns a copy of the counts, indexed 0-based from first.
func (t *frequencyTable) snapshot() []int {
	out := make([]int, len(t.counts))
	copy(out, t.counts)
	return out
}

// busiest returns the bucket with the greatest count. The scan starts from a
// baseline of zero and only replaces on a strictly greater count, so the
// lowest bucket wins ties and an all-zero table yields first.
func (t *frequencyTable) busiest() int {
	return t.busiestWindow(1)
}

// quietest returns the bucket with the smallest count. The baseline is the
// first bucket's count; later buckets replace it only when strictly smaller.
func (t *frequencyTable) quietest() int {
	quietest := 0
	least := t.counts[0]
	for i := 1; i < len(t.counts); i++ {
		if t.counts[i] < least {
			quietest = i
			least = t.counts[i]
		}
	}
	return t.first + quietest
}

// busiestWindow returns the starting bucket of the run of width contiguous
// buckets with the greatest summed count. Windows wrap from the last bucket
// back to the first. Ties go to the lowest starting bucket.
func (t *frequencyTable) busiestWindow(width int) int {
	busiest := 0
	most := 0
	n := len(t.counts)
	for i := 0; i < n; i++ {
		sum := 0
		for k := 0; k < width; k++ {
			sum += t.counts[(i+k)%n]
		}
		if sum > most {
			busiest = i
			most = sum
		}
	}
	return t.first + busiest
}
