// The font subpackage contains helper functions to parse fonts and
// obtain information from them (name, family, missing runes), a
// [Library] type to keep parsed fonts accessible by name or family,
// and the [Context] type that resolves (family, size) pairs into
// sized [Face] values for layout.
//
// A [Library] can be shared by many goroutines. A [Context] can't:
// it owns the sfnt buffers used while querying glyphs, so each layout
// operation running concurrently needs its own context, typically
// created with [Library.NewContext]().
package font
