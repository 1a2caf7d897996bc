// The cache subpackage provides a bounded, concurrent-safe cache for
// rasterized glyph masks.
//
// Rasterization is the most expensive part of rendering text, and rich
// text tends to repeat the same glyphs at the same sizes many times. The
// [DefaultCache] can be shared by many layouts, even concurrently, while
// each layout keeps its own [Handler] to build the cache keys.
//
// Cache sizes depend on the use-case. Assuming glyph masks of around
// 11x11 pixels on average, 64 glyphs already take more than 8KiB, and a
// couple fonts at a few sizes with bold and italic variants quickly move
// the working set into the MiBs. The [DefaultCache.PeakSize]() method
// can help find a reasonable capacity for a given application.
package cache
