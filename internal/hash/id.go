package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string. Control blocks key HDUs by
// the hash of their extension name.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}

// TypedID computes the xxHash64 of a name qualified by a type tag. Column
// view caches use it so the same column projected as two element types gets
// two distinct cache slots.
func TypedID(name string, typeTag string) uint64 {
	d := xxhash.New()
	_, _ = d.WriteString(name)
	_, _ = d.WriteString("\x00")
	_, _ = d.WriteString(typeTag)

	return d.Sum64()
}
