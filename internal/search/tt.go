package search

// Node types a transposition table entry can record. CutNode entries carry
// a lower bound (score >= the beta they were stored against); AllNode
// entries carry an upper bound (score <= the alpha they were stored
// against); PVNode entries are exact within the window they were found in.
const (
	NodeNone = iota
	NodePV
	NodeCut
	NodeAll
)

type HashEntry struct {
	key      uint64
	Move     Move
	Score    int
	Depth    int
	NodeType int
	age      int
}

func (e HashEntry) occupied() bool { return e.key != 0 }

// TranspositionTable is a fixed-capacity, direct-mapped cache from
// position fingerprint to search result. It is grounded on the teacher
// engine's engine/transtable.go tiered table, but simplified to a plain
// (non-atomic) slice: this module's concurrency model keeps a single TT
// scoped to a single, single-threaded search (see internal/search/epd.go
// for the one sanctioned concurrent use, which gives each job its own
// table rather than sharing one across goroutines), so the lock-free
// bucket machinery the teacher needs for lazy-SMP has no job to do here.
type TranspositionTable struct {
	entries []HashEntry
	mask    uint64
}

// NewTranspositionTable allocates a table sized to at most megabytes MB,
// rounded down to a power of two entry count so key-to-slot mapping is a
// single mask.
func NewTranspositionTable(megabytes int) *TranspositionTable {
	if megabytes < 1 {
		megabytes = 1
	}
	var bytesPerEntry = 40 // approximate; exact struct layout does not need to be load-bearing here
	var count = (megabytes * 1024 * 1024) / bytesPerEntry
	var size = uint64(1)
	for size*2 <= uint64(count) {
		size *= 2
	}
	if size == 0 {
		size = 1
	}
	return &TranspositionTable{
		entries: make([]HashEntry, size),
		mask:    size - 1,
	}
}

func (tt *TranspositionTable) Clear() {
	for i := range tt.entries {
		tt.entries[i] = HashEntry{}
	}
}

func (tt *TranspositionTable) index(key uint64) uint64 {
	return key & tt.mask
}

// Probe returns the entry stored for key, if any, along with the usual
// Type-1-collision caveat: a direct-mapped table cannot always tell a
// genuine hit from a different position hashing to the same slot and key
// (extremely rare with a 64-bit key), so callers must still validate any
// recalled move against the current position before trusting it.
func (tt *TranspositionTable) Probe(key uint64) (HashEntry, bool) {
	var e = tt.entries[tt.index(key)]
	if e.key != key {
		return HashEntry{}, false
	}
	return e, true
}

// Store writes an entry, replacing the current occupant of key's slot when
// the new entry is more valuable: an occupant from an older search (age
// mismatch) is always replaced; among same-age entries, prefer greater
// depth; among same-age-same-depth entries, prefer the more informative
// node type (PV > CUT > ALL).
func (tt *TranspositionTable) Store(key uint64, depth, nodeType, score int, move Move, age int) {
	var slot = tt.index(key)
	var old = tt.entries[slot]

	if old.occupied() && old.key != key {
		if old.age == age && old.Depth > depth {
			return
		}
		if old.age == age && old.Depth == depth && nodeTypeRank(old.NodeType) > nodeTypeRank(nodeType) {
			return
		}
	}

	if move == chessMoveEmpty && old.key == key {
		move = old.Move // keep a known-good move when storing a bound-only update
	}

	tt.entries[slot] = HashEntry{
		key:      key,
		Move:     move,
		Score:    score,
		Depth:    depth,
		NodeType: nodeType,
		age:      age,
	}
}

func nodeTypeRank(nt int) int {
	switch nt {
	case NodePV:
		return 2
	case NodeCut:
		return 1
	default:
		return 0
	}
}

// HashFull samples the first 1000 slots (or every slot, if smaller) and
// reports occupancy per mille, matching the UCI "hashfull" convention.
func (tt *TranspositionTable) HashFull() int {
	var sample = 1000
	if uint64(sample) > tt.mask+1 {
		sample = int(tt.mask + 1)
	}
	var occupied = 0
	for i := 0; i < sample; i++ {
		if tt.entries[i].occupied() {
			occupied++
		}
	}
	return occupied * 1000 / sample
}

const chessMoveEmpty = Move(0)
