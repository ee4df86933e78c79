package vec3

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/chewxy/math32"
)

// Size is the length of a serialized Vec3 in bytes.
const Size = 3 * 4

var be = binary.BigEndian

/*
Serialized format (big endian):

	X, Y, Z float32 // IEEE 754 bits
*/

// Serialize writes v to w.
func (v Vec3) Serialize(w io.Writer) error {
	return pcall(func() { v.serialize(w) })
}

// Deserialize reads a Vec3 from r.
// A short read is reported as io.ErrUnexpectedEOF,
// or io.EOF if nothing could be read.
func Deserialize(r io.Reader) (v Vec3, err error) {
	err = pcall(func() { v.deserialize(r) })
	return
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Vec3) MarshalBinary() ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := v.Serialize(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
// Trailing bytes after the first Size are ignored.
func (v *Vec3) UnmarshalBinary(data []byte) error {
	return pcall(func() { v.deserialize(bytes.NewReader(data)) })
}

func (v Vec3) serialize(w io.Writer) {
	buf := make([]byte, Size)
	for i, c := range v.Array() {
		be.PutUint32(buf[4*i:], math32.Float32bits(c))
	}
	_, err := w.Write(buf)
	chk(err)
}

func (v *Vec3) deserialize(r io.Reader) {
	buf := make([]byte, Size)
	_, err := io.ReadFull(r, buf)
	chk(err)

	var a [3]float32
	for i := range a {
		a[i] = math32.Float32frombits(be.Uint32(buf[4*i:]))
	}
	*v = FromArray(a)
}

type serializationError struct {
	error
}

func pcall(f func()) (rerr error) {
	defer func() {
		switch r := recover().(type) {
		case serializationError:
			rerr = r.error
		case nil:
		default:
			panic(r)
		}
	}()
	f()
	return
}

func chk(err error) {
	if err != nil {
		panic(serializationError{err})
	}
}
