package app

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/bvisness/flowstyle/trace"
	"github.com/bvisness/flowstyle/util"
)

// Serializer reads or writes the .grad binary format. The same S* call
// sequence describes both directions: with Encode set each helper writes the
// value it is pointed at, otherwise it overwrites it with the decoded value.
// The first failure is sticky; later calls are no-ops and Ok reports false.
//
// Integers are signed varints, floats are little-endian IEEE 754, and strings
// and slices carry a varint length prefix. Every stream starts with a
// version number.
type Serializer struct {
	Buf     *bytes.Buffer
	Encode  bool
	Version int
	Errs    []error
}

func NewEncoder(version int) *Serializer {
	s := &Serializer{Buf: &bytes.Buffer{}, Encode: true, Version: version}
	SInt(s, &s.Version)
	return s
}

func NewDecoder(buf []byte) *Serializer {
	s := &Serializer{Buf: bytes.NewBuffer(buf)}
	SInt(s, &s.Version)
	return s
}

func (s *Serializer) Bytes() []byte {
	util.Assert(s.Encode, "Serializer.Bytes called on a decoder")
	return s.Buf.Bytes()
}

func (s *Serializer) Ok() bool {
	return len(s.Errs) == 0
}

// Error records err with the stack of the S* call that failed and returns
// false, so helpers can `return s.Error(err)`.
func (s *Serializer) Error(err error) bool {
	s.Errs = append(s.Errs, SerializeError{
		Err:   err,
		Stack: trace.Trace()[1:],
	})
	return false
}

func SBool(s *Serializer, b *bool) bool {
	if !s.Ok() {
		return false
	}
	if s.Encode {
		s.Buf.WriteByte(util.Tern[byte](*b, 1, 0))
		return true
	}
	x, err := s.Buf.ReadByte()
	if err != nil {
		return s.Error(err)
	}
	*b = x > 0
	return true
}

func SInt[T ~int | ~int32 | ~int64](s *Serializer, n *T) bool {
	if !s.Ok() {
		return false
	}
	if s.Encode {
		s.Buf.Write(binary.AppendVarint(nil, int64(*n)))
		return true
	}
	x, err := binary.ReadVarint(s.Buf)
	if err != nil {
		return s.Error(err)
	}
	*n = T(x)
	return true
}

func SFloat[T ~float32 | ~float64](s *Serializer, n *T) bool {
	if !s.Ok() {
		return false
	}
	var err error
	if s.Encode {
		err = binary.Write(s.Buf, binary.LittleEndian, *n)
	} else {
		err = binary.Read(s.Buf, binary.LittleEndian, n)
	}
	if err != nil {
		return s.Error(err)
	}
	return true
}

func SStr[T ~string](s *Serializer, str *T) bool {
	n := len(*str)
	if !sLen(s, &n) {
		return false
	}
	if s.Encode {
		s.Buf.WriteString(string(*str))
		return true
	}
	res := make([]byte, n)
	if _, err := io.ReadFull(s.Buf, res); err != nil {
		return s.Error(err)
	}
	*str = T(res)
	return true
}

// SSlice serializes a slice element by element using f. An empty slice
// decodes as nil.
func SSlice[T any](s *Serializer, slice *[]T, f func(s *Serializer, v *T) bool) bool {
	n := len(*slice)
	if !sLen(s, &n) {
		return false
	}
	if !s.Encode {
		*slice = nil
		if n > 0 {
			*slice = make([]T, n)
		}
	}
	for i := range n {
		if !f(s, &(*slice)[i]) {
			return false
		}
	}
	return true
}

// sLen handles a length prefix. On decode it rejects lengths longer than the
// bytes left, so a corrupt prefix cannot trigger a huge allocation.
func sLen(s *Serializer, n *int) bool {
	if !SInt(s, n) {
		return false
	}
	if !s.Encode && (*n < 0 || *n > s.Buf.Len()) {
		return s.Error(io.ErrUnexpectedEOF)
	}
	return true
}

type SerializeError struct {
	Err   error
	Stack trace.CallStack
}

func (e SerializeError) Error() string {
	return e.Err.Error()
}

func (e SerializeError) Unwrap() error {
	return e.Err
}
