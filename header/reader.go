package header

// reader walks a header block in character units
type reader struct {
	src []rune
	pos int
}

func newReader(s string) *reader {
	return &reader{src: []rune(s)}
}

func (r *reader) remaining() int {
	return len(r.src) - r.pos
}

// next returns the following n characters; the caller checks remaining
func (r *reader) next(n int) string {
	s := string(r.src[r.pos : r.pos+n])
	r.pos += n
	return s
}

func (r *reader) rest() string {
	s := string(r.src[r.pos:])
	r.pos = len(r.src)
	return s
}
