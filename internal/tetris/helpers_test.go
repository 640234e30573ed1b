package tetris

// sequence is a deterministic Randomizer that cycles through kinds.
type sequence struct {
	kinds []Kind
	next  int
}

func newSequence(kinds ...Kind) *sequence {
	return &sequence{kinds: kinds}
}

func (s *sequence) Next() Kind {
	k := s.kinds[s.next%len(s.kinds)]
	s.next++
	return k
}

func (s *sequence) Clone() Randomizer {
	c := *s
	return &c
}

// fillRow occupies every cell of row y except the listed columns.
func fillRow(e *Engine, y int, k Kind, holes ...int) {
	for x := range e.Width() {
		hole := false
		for _, h := range holes {
			if h == x {
				hole = true
			}
		}
		if !hole {
			e.SetCell(x, y, k)
		}
	}
}

// newTestEngine builds a canonical engine whose queue only deals k.
func newTestEngine(k Kind) *Engine {
	e, err := New(Config{Randomizer: newSequence(k)})
	if err != nil {
		panic(err)
	}
	return e
}
