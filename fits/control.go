// Package fits ties the layers together: it scans a FITS file into its
// HDUs, keeps a control block of per-HDU offsets for random access, and
// writes files back out record by record.
package fits

import "github.com/arloliu/astrofits/internal/hash"

// scanState tracks the lifecycle of a File's control block.
type scanState uint8

const (
	stateUninitialized scanState = iota
	stateScanning
	stateReady
)

// ControlEntry records where one HDU lives in the file and whether its
// data unit has been materialized.
type ControlEntry struct {
	Name         string
	Index        int
	HeaderOffset int64
	DataOffset   int64
	DataRead     bool
}

// controlBlock indexes HDUs by sequence and by name. Name keys are xxhash
// IDs; when two HDUs share a name, the first occurrence wins.
type controlBlock struct {
	entries []ControlEntry
	byName  map[uint64]int
}

func newControlBlock() *controlBlock {
	return &controlBlock{
		byName: make(map[uint64]int),
	}
}

func (cb *controlBlock) add(entry ControlEntry) {
	entry.Index = len(cb.entries)
	cb.entries = append(cb.entries, entry)

	key := hash.ID(entry.Name)
	if _, exists := cb.byName[key]; !exists {
		cb.byName[key] = entry.Index
	}
}

func (cb *controlBlock) lookup(name string) (int, bool) {
	idx, ok := cb.byName[hash.ID(name)]
	return idx, ok
}
