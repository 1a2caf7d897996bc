package cache

import "image"
import "sync"
import "sync/atomic"

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rtxt.cache'
func tracer() tracing.Trace {
	return tracing.Select("rtxt.cache")
}

// A cache key. See [Handler] for the way keys are built.
type Key [3]uint64

// The default mask cache. It is concurrent-safe (though not optimized
// for heavily concurrent scenarios), it has memory bounds and uses
// random sampling for evicting entries.
type DefaultCache struct {
	cachedMasks map[Key]*cachedMaskEntry
	spaceBytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	mutex sync.RWMutex
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
//
// Values below 32*1024 (32KiB) are not recommended; allowing the
// cache to grow up to a few MiBs in size is generally preferable.
func NewDefaultCache(maxByteSize int) *DefaultCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") }
	return &DefaultCache {
		cachedMasks: make(map[Key]*cachedMaskEntry, 128),
		spaceBytesLeft: uint32(maxByteSize),
		lowestBytesLeft: uint32(maxByteSize),
		byteSizeLimit: uint32(maxByteSize),
	}
}

// Attempts to remove the entry with the lowest eviction cost from a
// small pool of samples. Map iteration order provides the randomness.
// May not remove anything if all the samples are hotter than the
// given value.
//
// The returned value is the freed space, which must be manually
// added to spaceBytesLeft by the caller.
func (self *DefaultCache) removeRandEntry(hotness uint32, instant uint32) uint32 {
	const SampleSize = 10

	self.mutex.RLock()
	var selectedKey Key
	lowestHotness := ^uint32(0)
	samplesTaken  := 0
	for key, entry := range self.cachedMasks {
		currHotness := entry.Hotness(instant)
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}
		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	self.mutex.RUnlock()

	freedSpace := uint32(0)
	if lowestHotness < hotness {
		self.mutex.Lock()
		entry, stillExists := self.cachedMasks[selectedKey]
		if stillExists {
			delete(self.cachedMasks, selectedKey)
			freedSpace = entry.ByteSize
		}
		self.mutex.Unlock()
	}
	return freedSpace
}

// Stores the given mask with the given key. Masks bigger than the
// cache limit are ignored, and so are masks for keys already present.
func (self *DefaultCache) PassMask(key Key, mask *image.Alpha) {
	const MaxMakeRoomAttempts = 2

	// see if we have enough space to add the mask, or try to
	// make some room otherwise
	maskEntry, instant := newCachedMaskEntry(mask)
	if maskEntry.ByteSize > atomic.LoadUint32(&self.byteSizeLimit) { return }
	spaceBytesLeft := atomic.LoadUint32(&self.spaceBytesLeft)
	freedSpace := uint32(0)
	if maskEntry.ByteSize > spaceBytesLeft {
		hotness := maskEntry.Hotness(instant)
		missingSpace := maskEntry.ByteSize - spaceBytesLeft
		for i := 0; i < MaxMakeRoomAttempts; i++ {
			freedSpace += self.removeRandEntry(hotness, instant)
			if freedSpace >= missingSpace { goto roomMade }
		}

		// not enough room for the new entry
		if freedSpace != 0 {
			atomic.AddUint32(&self.spaceBytesLeft, freedSpace)
		}
		tracer().Debugf("mask cache full, discarding %d byte mask", maskEntry.ByteSize)
		return
	}

roomMade:
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if freedSpace != 0 { atomic.AddUint32(&self.spaceBytesLeft, freedSpace) }
	_, maskAlreadyExists := self.cachedMasks[key]
	if maskAlreadyExists { return }
	if atomic.LoadUint32(&self.spaceBytesLeft) < maskEntry.ByteSize { return }
	newLeft := atomic.AddUint32(&self.spaceBytesLeft, ^uint32(maskEntry.ByteSize - 1))
	if newLeft < atomic.LoadUint32(&self.lowestBytesLeft) {
		atomic.StoreUint32(&self.lowestBytesLeft, newLeft)
	}
	self.cachedMasks[key] = maskEntry
}

// Gets the mask associated to the given key. The bool indicates
// whether the mask has been found (as it may be nil).
func (self *DefaultCache) GetMask(key Key) (*image.Alpha, bool) {
	self.mutex.RLock()
	entry, found := self.cachedMasks[key]
	self.mutex.RUnlock()
	if !found { return nil, false }
	entry.IncreaseAccessCount()
	return entry.Mask, true
}

// Returns the number of masks currently stored in the cache.
func (self *DefaultCache) Len() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.cachedMasks)
}

// Returns an approximation of the number of bytes taken by the
// glyph masks currently stored in the cache.
func (self *DefaultCache) ApproxByteSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.spaceBytesLeft))
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life.
func (self *DefaultCache) PeakSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.lowestBytesLeft))
}

// Returns a new handler for the cache. While the cache is concurrent-safe,
// handlers can only be used non-concurrently.
func (self *DefaultCache) NewHandler() *Handler {
	return &Handler{ cache: self }
}
