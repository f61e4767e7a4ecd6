//go:build !linux

package touch

// Reader is unavailable on this platform.
type Reader struct{}

// Open always returns ErrUnsupported.
func Open(path string, width float64, grab bool) (*Reader, error) {
	return nil, ErrUnsupported
}

func (r *Reader) Start(sink Sink) {}

func (r *Reader) SetWidth(width float64) {}

func (r *Reader) Close() error { return nil }
