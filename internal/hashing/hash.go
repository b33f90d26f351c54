// Package hashing contains internal helpers for content-derived hashes.
package hashing

import (
	"encoding/binary"
	"hash/maphash"
	"math/bits"

	"github.com/cespare/xxhash/v2"
)

// seed is shared by every value hashed in this process so that equal values
// produce equal hashes regardless of which container computed them.
var seed = maphash.MakeSeed()

// Sum64 hashes common comparable types with 64-bit xxHash.
// Strings and fixed-size byte arrays are hashed over their bytes, integer
// kinds over their little-endian encoding. Everything else (structs, pointers,
// floats, interfaces) falls back to maphash.Comparable with a process-wide seed,
// so results are stable for the life of the process only.
func Sum64[T comparable](v T) uint64 {
	switch x := any(v).(type) {
	case string:
		return xxhash.Sum64String(x)
	case [16]byte:
		return xxhash.Sum64(x[:])
	case [32]byte:
		return xxhash.Sum64(x[:])

	case bool:
		if x {
			return fromUint64(1)
		}
		return fromUint64(0)
	case uint8:
		return fromUint64(uint64(x))
	case uint16:
		return fromUint64(uint64(x))
	case uint32:
		return fromUint64(uint64(x))
	case uint64:
		return fromUint64(x)
	case uint:
		return fromUint64(uint64(x))
	case uintptr:
		return fromUint64(uint64(x))
	case int8:
		return fromUint64(uint64(uint8(x)))
	case int16:
		return fromUint64(uint64(uint16(x)))
	case int32:
		return fromUint64(uint64(uint32(x)))
	case int64:
		return fromUint64(uint64(x))
	case int:
		return fromUint64(uint64(x))
	default:
		return maphash.Comparable(seed, v)
	}
}

func fromUint64(u uint64) uint64 {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], u)
	return xxhash.Sum64(b[:])
}

// Mix is the splitmix64 finalizer. It spreads low-entropy inputs over all bits.
func Mix(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	return h
}

// Pair combines the hashes of a key and its value. It is not symmetric:
// Pair(a, b) != Pair(b, a) for a != b in practice.
func Pair(key, val uint64) uint64 {
	return Mix(key*0x9e3779b97f4a7c15 + bits.RotateLeft64(Mix(val), 31))
}

// Unordered accumulates an order-independent digest over a set of hashes.
// The zero value is ready to use.
type Unordered struct {
	sum uint64
	xor uint64
	n   uint64
}

// Add folds h into the digest.
func (u *Unordered) Add(h uint64) {
	m := Mix(h)
	u.sum += m
	u.xor ^= bits.RotateLeft64(m, 17)
	u.n++
}

// Sum64 returns the digest of everything added so far.
func (u *Unordered) Sum64() uint64 {
	return Mix(u.sum ^ bits.RotateLeft64(u.xor, 29) ^ u.n*0xff51afd7ed558ccd)
}
