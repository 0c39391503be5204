package dict

import (
	"encoding/binary"

	"github.com/dchest/siphash"
	"github.com/dolthub/maphash"
)

const djb2Init = uint64(5381)

// Type 决定 Dict 使用的哈希函数，一个 Dict 的生命周期内不能变化
type Type struct {
	Name         string
	HashFunction func(key string) uint64
}

var DJB2Type = &Type{
	Name:         "djb2",
	HashFunction: DJB2,
}

// DJB2 returns the unreduced djb2 accumulator of key's bytes.
func DJB2(key string) uint64 {
	h := djb2Init
	// 按字节而不是按 rune 处理
	for i := 0; i < len(key); i++ {
		h = (h << 5) + h + uint64(key[i])
	}
	return h
}

// Hash maps key to a slot index in [0, capacity).
func Hash(key string, capacity int64) int64 {
	if capacity < 1 {
		panic("dict: hash capacity must be positive")
	}
	return int64(DJB2(key) % uint64(capacity))
}

// SipHashType returns a keyed SipHash-2-4 type. The seed is padded or
// truncated to 16 bytes.
func SipHashType(seed []byte) *Type {
	k := make([]byte, 16)
	copy(k, seed)
	k0, k1 := binary.LittleEndian.Uint64(k[:8]), binary.LittleEndian.Uint64(k[8:])
	return &Type{
		Name: "siphash",
		HashFunction: func(key string) uint64 {
			return siphash.Hash(k0, k1, []byte(key))
		},
	}
}

// MapHashType returns a type backed by the runtime's map hash with a
// fresh random seed.
func MapHashType() *Type {
	h := maphash.NewHasher[string]()
	return &Type{
		Name:         "maphash",
		HashFunction: h.Hash,
	}
}
