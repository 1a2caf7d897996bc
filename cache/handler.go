package cache

import "image"
import "math"

import "golang.org/x/image/font/sfnt"

import "github.com/tinne26/rtxt/font"
import "github.com/tinne26/rtxt/mask"

// A Handler builds cache keys from the current rasterization state.
// Each key packs:
//  - [0]: the face ID.
//  - [1]: the rasterizer signature.
//  - [2]: the face size on the highest 32 bits, the outline transform
//    on bits 16 to 28 and the glyph index on the lowest 16 bits.
//
// Handlers can't be used concurrently.
type Handler struct {
	cache *DefaultCache
	activeKey Key
}

// Notifies that the face in use has changed.
func (self *Handler) NotifyFaceChange(face font.Face) {
	self.activeKey[0] = face.ID()
	self.activeKey[2] = (self.activeKey[2] & ^uint64(0xFFFFFFFF00000000)) | (uint64(uint32(face.Size())) << 32)
}

// Notifies that the rasterizer has changed.
func (self *Handler) NotifyRasterizerChange(rasterizer mask.Rasterizer) {
	self.activeKey[1] = rasterizer.Signature()
}

// Notifies that the transform applied to the outlines has changed.
// Only shears are told apart, quantized to 1/1024ths.
func (self *Handler) NotifyTransformChange(transform mask.Transform) {
	var bits uint64
	if !transform.IsIdentity() {
		shear := uint64(uint16(int16(math.Round(transform.XY*1024)))) & 0x0FFF
		bits = (1 << 28) | (shear << 16)
	}
	self.activeKey[2] = (self.activeKey[2] & ^uint64(0x000000001FFF0000)) | bits
}

// Gets the mask for the given glyph index under the current configuration.
func (self *Handler) GetMask(index sfnt.GlyphIndex) (*image.Alpha, bool) {
	self.activeKey[2] = (self.activeKey[2] & ^uint64(0x000000000000FFFF)) | uint64(index)
	return self.cache.GetMask(self.activeKey)
}

// Passes the mask for the given glyph index under the current
// configuration to the underlying cache.
func (self *Handler) PassMask(index sfnt.GlyphIndex, mask *image.Alpha) {
	self.activeKey[2] = (self.activeKey[2] & ^uint64(0x000000000000FFFF)) | uint64(index)
	self.cache.PassMask(self.activeKey, mask)
}

// Returns the underlying [DefaultCache].
func (self *Handler) Cache() *DefaultCache {
	return self.cache
}
