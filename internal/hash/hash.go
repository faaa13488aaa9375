package hash

import (
	"fmt"
	"hash/crc32"
)

// checksum - Returns a crc32.ChecksumIEEE value over a stable byte rendering of the item.
// The checksum is widened straight from uint32 to int64, hence it can never be negative and
// no absolute value juggling is needed further down.
func checksum[T comparable](item T) int64 {
	return int64(crc32.ChecksumIEEE(fmt.Appendf(nil, "%v", item)))
}
