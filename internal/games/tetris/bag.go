package tetris

import "math/rand"

// Bag is a 7-bag randomizer with a fixed-length lookahead queue.
// Every kind is dealt exactly once per shuffled bag; the bag is refilled only
// after it is fully drained.
type Bag struct {
	rng   *rand.Rand
	bag   []Kind // remaining kinds of the current shuffle
	queue []Kind // upcoming kinds, head first
}

// NewBag creates a randomizer whose queue holds queueLen kinds, pre-filled
// from the first shuffled bag.
func NewBag(rng *rand.Rand, queueLen int) *Bag {
	if queueLen < 0 {
		queueLen = 0
	}
	b := &Bag{
		rng:   rng,
		queue: make([]Kind, 0, queueLen),
	}
	for range queueLen {
		b.queue = append(b.queue, b.draw())
	}
	return b
}

// refill replaces the empty bag with a fresh shuffle of all seven kinds.
func (b *Bag) refill() {
	kinds := Kinds()
	b.rng.Shuffle(len(kinds), func(i, j int) {
		kinds[i], kinds[j] = kinds[j], kinds[i]
	})
	b.bag = kinds
}

// draw removes one kind from the bag, refilling it first if it is empty.
func (b *Bag) draw() Kind {
	if len(b.bag) == 0 {
		b.refill()
	}
	if len(b.bag) == 0 {
		panic("tetris: bag empty after refill")
	}
	kind := b.bag[0]
	b.bag = b.bag[1:]
	return kind
}

// Next returns the head of the queue and appends a fresh draw to its tail.
// With a zero-length queue it draws straight from the bag.
func (b *Bag) Next() Kind {
	if len(b.queue) == 0 {
		return b.draw()
	}
	head := b.queue[0]
	copy(b.queue, b.queue[1:])
	b.queue[len(b.queue)-1] = b.draw()
	return head
}

// Peek returns a copy of the next n queued kinds without consuming them.
// n is clamped to the queue length.
func (b *Bag) Peek(n int) []Kind {
	if n > len(b.queue) {
		n = len(b.queue)
	}
	if n <= 0 {
		return []Kind{}
	}
	out := make([]Kind, n)
	copy(out, b.queue[:n])
	return out
}

// QueueLen returns the fixed lookahead length.
func (b *Bag) QueueLen() int {
	return len(b.queue)
}

// Remaining returns how many kinds are left in the current shuffle.
func (b *Bag) Remaining() int {
	return len(b.bag)
}
