package cache

import "image"
import "sync/atomic"
import "time"

// A cached mask with additional information to estimate how
// much the entry is being used.
type cachedMaskEntry struct {
	Mask *image.Alpha // Read-only.
	ByteSize uint32 // Read-only.
	CreationInstant uint32 // see cacheEntryInstant(). Read-only.
	accessCount uint32 // number of times the entry has been accessed
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedMaskEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction. Concurrent-safe.
func (self *cachedMaskEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := self.ByteSize*atomic.LoadUint32(&self.accessCount)
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

var processStart = time.Now()

// Shifts the cache clock forward in tests, so entries can be
// told apart without sleeping.
var testInstantNanosHack int64

// A time instant based on the monotonic clock, downscaled to
// units of roughly 134ms.
func cacheEntryInstant() uint32 {
	return uint32((int64(time.Since(processStart)) + testInstantNanosHack) >> 27)
}

func newCachedMaskEntry(mask *image.Alpha) (*cachedMaskEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedMaskEntry {
		Mask: mask,
		ByteSize: MaskByteSize(mask),
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}

const constMaskSizeFactor = 56

// Returns the approximate size of the given mask in bytes, including
// the bookkeeping. Nil masks (e.g.: spaces) are also cacheable.
func MaskByteSize(mask *image.Alpha) uint32 {
	if mask == nil { return constMaskSizeFactor }
	return uint32(len(mask.Pix)) + constMaskSizeFactor
}
