package model

const historySize = 5

// History keeps the digests of recent generations in a fixed ring to detect a
// board that has settled into a still life or a short cycle
type History struct {
	digests [historySize]Digest
	next    int
	count   int
}

// Record adds a generation digest, overwriting the oldest once full
func (h *History) Record(d Digest) {
	h.digests[h.next] = d
	h.next = (h.next + 1) % historySize
	h.count = min(h.count+1, historySize)
}

// Reset forgets every recorded generation
func (h *History) Reset() {
	h.next = 0
	h.count = 0
}

// Len returns the number of recorded generations
func (h *History) Len() int {
	return h.count
}

// recent returns the i-th most recent digest, 1 being the latest
func (h *History) recent(i int) Digest {
	return h.digests[(h.next-i+historySize)%historySize]
}

// Stagnant reports whether d repeats one of the last three recorded
// generations, i.e. the board is static or cycling with period <= 3
func (h *History) Stagnant(d Digest) bool {
	if h.count < 3 {
		return false
	}
	for i := 1; i <= 3; i++ {
		if h.recent(i) == d {
			return true
		}
	}
	return false
}
