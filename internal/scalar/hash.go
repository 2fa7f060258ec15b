package scalar

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Hash combines values into a single hash. Equal values hash equal,
// so -0 and +0 collapse to the same bits.
func Hash(values ...Real) uint64 {
	d := xxhash.New()
	var buf [8]byte
	for _, v := range values {
		if v == 0 {
			v = 0
		}
		binary.LittleEndian.PutUint64(buf[:], Bits(v))
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}
