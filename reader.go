package pgpframe

import "encoding/binary"

// Reader is a sequential cursor over an immutable byte slice. Every read
// is bounds checked; a read that cannot be satisfied fails with
// ErrPrematureEOF and consumes nothing. A Reader must not be shared
// between goroutines, since each read advances the cursor.
type Reader struct {
	data []byte
}

func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Len returns the number of unconsumed bytes.
func (r *Reader) Len() int {
	return len(r.data)
}

// MaybeByte consumes and returns the next byte. The second return value
// is false only at true end of input.
func (r *Reader) MaybeByte() (byte, bool) {
	if len(r.data) == 0 {
		return 0, false
	}
	b := r.data[0]
	r.data = r.data[1:]
	return b, true
}

// ReadByte implements io.ByteReader.
func (r *Reader) ReadByte() (byte, error) {
	b, ok := r.MaybeByte()
	if !ok {
		return 0, ErrPrematureEOF
	}
	return b, nil
}

// ReadBytes consumes exactly n bytes and returns them as a subslice of
// the underlying buffer, without copying.
func (r *Reader) ReadBytes(n int) ([]byte, error) {
	if n < 0 || n > len(r.data) {
		return nil, ErrPrematureEOF
	}
	b := r.data[:n]
	r.data = r.data[n:]
	return b, nil
}

// ReadBeUint32 consumes 4 bytes as a big-endian unsigned integer.
func (r *Reader) ReadBeUint32() (uint32, error) {
	b, err := r.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}
