package internal

import "cmp"

// TopK keeps the K highest-scoring items seen so far, best first. An item
// only displaces another when its score is strictly greater, so among equal
// scores the one offered first stays ahead.
type TopK[S cmp.Ordered, T any] struct {
	capacity int
	entries  []RankedEntry[S, T]
}

type RankedEntry[S cmp.Ordered, T any] struct {
	Score S
	Item  T
}

func NewTopK[S cmp.Ordered, T any](capacity int) *TopK[S, T] {
	return &TopK[S, T]{
		capacity: capacity,
		entries:  make([]RankedEntry[S, T], 0, capacity),
	}
}

// Offer ranks item by score and reports whether it was kept.
func (this *TopK[S, T]) Offer(score S, item T) bool {
	if this.capacity <= 0 {
		return false
	}

	// insertion point after every entry with a score >= this one
	pos := len(this.entries)
	for pos > 0 && this.entries[pos-1].Score < score {
		pos--
	}

	if pos >= this.capacity {
		return false
	}

	if len(this.entries) < this.capacity {
		this.entries = append(this.entries, RankedEntry[S, T]{})
	}
	copy(this.entries[pos+1:], this.entries[pos:len(this.entries)-1])
	this.entries[pos] = RankedEntry[S, T]{score, item}

	return true
}

func (this *TopK[S, T]) Len() int {
	return len(this.entries)
}

// Entries returns the kept entries, best first.
func (this *TopK[S, T]) Entries() []RankedEntry[S, T] {
	return append([]RankedEntry[S, T](nil), this.entries...)
}
