package tetris

import "math/rand/v2"

// Randomizer picks the kinds that refill the queue.
type Randomizer interface {
	// Next returns the next kind.
	Next() Kind
	// Clone returns a randomizer with an independent copy of the state. The
	// copy yields the same future sequence as the original.
	Clone() Randomizer
}

// newSource builds a PCG source from a seed. PCG is a plain value, so copying
// it forks the stream.
func newSource(seed int64) *rand.PCG {
	return rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)
}

// Uniform draws each kind independently with equal probability.
type Uniform struct {
	src *rand.PCG
	rng *rand.Rand
}

// NewUniform creates a uniform randomizer seeded with seed.
func NewUniform(seed int64) *Uniform {
	src := newSource(seed)
	return &Uniform{src: src, rng: rand.New(src)}
}

// Next returns a uniformly chosen kind.
func (u *Uniform) Next() Kind {
	return kinds[u.rng.IntN(len(kinds))]
}

// Clone forks the randomizer.
func (u *Uniform) Clone() Randomizer {
	src := *u.src
	return &Uniform{src: &src, rng: rand.New(&src)}
}

// Bag deals all seven kinds in a shuffled order before reshuffling, so no
// kind is ever absent for more than twelve pieces.
type Bag struct {
	src *rand.PCG
	rng *rand.Rand
	bag []Kind
}

// NewBag creates a 7-bag randomizer seeded with seed.
func NewBag(seed int64) *Bag {
	src := newSource(seed)
	return &Bag{src: src, rng: rand.New(src)}
}

// Next deals the next kind, refilling the bag when it runs out.
func (b *Bag) Next() Kind {
	if len(b.bag) == 0 {
		b.refill()
	}
	k := b.bag[0]
	b.bag = b.bag[1:]
	return k
}

func (b *Bag) refill() {
	b.bag = Kinds()
	// Fisher-Yates
	for i := len(b.bag) - 1; i > 0; i-- {
		j := b.rng.IntN(i + 1)
		b.bag[i], b.bag[j] = b.bag[j], b.bag[i]
	}
}

// Clone forks the randomizer including the undealt part of the bag.
func (b *Bag) Clone() Randomizer {
	src := *b.src
	bag := make([]Kind, len(b.bag))
	copy(bag, b.bag)
	return &Bag{src: &src, rng: rand.New(&src), bag: bag}
}

// Queue holds the upcoming kinds. Its length is fixed at creation: every
// Pop pushes a fresh kind to the tail.
type Queue struct {
	kinds []Kind
	rnd   Randomizer
}

// NewQueue fills a queue of size kinds from rnd. Sizes below 1 are raised
// to 1.
func NewQueue(rnd Randomizer, size int) *Queue {
	size = max(size, 1)
	q := &Queue{kinds: make([]Kind, 0, size), rnd: rnd}
	for range size {
		q.kinds = append(q.kinds, rnd.Next())
	}
	return q
}

// Len returns the number of queued kinds.
func (q *Queue) Len() int {
	return len(q.kinds)
}

// Pop removes the head and refills the tail.
func (q *Queue) Pop() Kind {
	head := q.kinds[0]
	copy(q.kinds, q.kinds[1:])
	q.kinds[len(q.kinds)-1] = q.rnd.Next()
	return head
}

// Peek returns a copy of the first n kinds. n is clamped to [1, Len()].
func (q *Queue) Peek(n int) []Kind {
	n = min(max(n, 1), len(q.kinds))
	out := make([]Kind, n)
	copy(out, q.kinds[:n])
	return out
}

// Clone returns a queue with its own backing array and a forked randomizer.
func (q *Queue) Clone() *Queue {
	kinds := make([]Kind, len(q.kinds))
	copy(kinds, q.kinds)
	return &Queue{kinds: kinds, rnd: q.rnd.Clone()}
}
