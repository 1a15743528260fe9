package audiotest

import (
	"fmt"
	"io"
)

// SeekBuffer is an in-memory io.ReadWriteSeeker for exercising WAV
// encode/decode round trips without touching the filesystem.
type SeekBuffer struct {
	data []byte
	off  int64
}

func (b *SeekBuffer) Bytes() []byte { return b.data }

func (b *SeekBuffer) Write(p []byte) (int, error) {
	end := b.off + int64(len(p))
	if end > int64(len(b.data)) {
		grown := make([]byte, end)
		copy(grown, b.data)
		b.data = grown
	}
	copy(b.data[b.off:], p)
	b.off = end
	return len(p), nil
}

func (b *SeekBuffer) Read(p []byte) (int, error) {
	if b.off >= int64(len(b.data)) {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.off:])
	b.off += int64(n)
	return n, nil
}

func (b *SeekBuffer) Seek(offset int64, whence int) (int64, error) {
	var pos int64
	switch whence {
	case io.SeekStart:
		pos = offset
	case io.SeekCurrent:
		pos = b.off + offset
	case io.SeekEnd:
		pos = int64(len(b.data)) + offset
	default:
		return 0, fmt.Errorf("invalid whence: %d", whence)
	}
	if pos < 0 {
		return 0, fmt.Errorf("negative position")
	}
	b.off = pos
	return pos, nil
}
