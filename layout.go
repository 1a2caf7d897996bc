package rtxt

// Lays out the runs and renders them into a new pixel buffer.
//
// When the requested size has a non-zero width, lines are wrapped to
// it. Otherwise, Options.MaxWidth is used. Zero requested dimensions
// take the size of the laid out text. See [Render]() for the rendering
// details.
//
// Runs with malformed text or unresolvable fonts are skipped (see
// [Observer]), so errors only happen when there's no font provider
// or when the buffer can't be allocated.
func Layout(runs []StyledRun, requested *Size, opts Options) (*PixelBuffer, error) {
	if requested != nil && requested.Width > 0 {
		opts.MaxWidth = requested.Width
	}
	session := NewSession(opts)
	err := session.Add(runs)
	if err != nil { return nil, err }
	return session.Render(requested)
}
