package aes

import (
	"errors"
	"fmt"
)

// BlockSize The AES block size in bytes.
const BlockSize = 16

// StateWords Number of 32-bit columns in the state array.
const StateWords = BlockSize / 4

// Word is an unsigned integer of at least 32 bits holding one state column
// or round key word. Only the low 32 bits carry data.
type Word interface {
	~uint32 | ~uint64 | ~uint
}

var (
	ErrShortBuffer     = errors.New("buffer shorter than one block")
	ErrIndexOutOfRange = errors.New("column index out of range")
)

// WordFromBuffer reads the 32-bit word at word offset <offset> of buffer,
// most significant byte first. This fills one column of the state array,
// see FIPS-197 Figure 3. Offset must be within 0..3.
func WordFromBuffer[T Word](buffer *[BlockSize]byte, offset int) T {
	b := buffer[offset<<2 : (offset<<2)+4]
	return T(b[0])<<24 | T(b[1])<<16 | T(b[2])<<8 | T(b[3])
}

// ColumnToBuffer writes the state column value into buffer at column <column>,
// most significant byte first. This is the output transformation of
// FIPS-197 Figure 3. Column must be within 0..3.
func ColumnToBuffer[T Word](value T, column int, buffer *[BlockSize]byte) {
	b := buffer[column<<2 : (column<<2)+4]
	b[0] = byte(value >> 24)
	b[1] = byte(value >> 16)
	b[2] = byte(value >> 8)
	b[3] = byte(value)
}

// LoadState fills all four columns of state from buffer.
func LoadState[T Word](buffer *[BlockSize]byte, state *[StateWords]T) {
	for i := range state {
		state[i] = WordFromBuffer[T](buffer, i)
	}
}

// StoreState writes all four columns of state into buffer.
func StoreState[T Word](state *[StateWords]T, buffer *[BlockSize]byte) {
	for i := range state {
		ColumnToBuffer(state[i], i, buffer)
	}
}

// ReadWord is the checked form of WordFromBuffer, for callers that cannot
// guarantee the buffer length or offset themselves.
func ReadWord[T Word](buffer []byte, offset int) (T, error) {
	if len(buffer) < BlockSize {
		return 0, fmt.Errorf("read word: %w: got %d bytes", ErrShortBuffer, len(buffer))
	}
	if offset < 0 || offset >= StateWords {
		return 0, fmt.Errorf("read word: %w: offset %d", ErrIndexOutOfRange, offset)
	}
	return WordFromBuffer[T]((*[BlockSize]byte)(buffer), offset), nil
}

// WriteColumn is the checked form of ColumnToBuffer.
func WriteColumn[T Word](value T, column int, buffer []byte) error {
	if len(buffer) < BlockSize {
		return fmt.Errorf("write column: %w: got %d bytes", ErrShortBuffer, len(buffer))
	}
	if column < 0 || column >= StateWords {
		return fmt.Errorf("write column: %w: column %d", ErrIndexOutOfRange, column)
	}
	ColumnToBuffer(value, column, (*[BlockSize]byte)(buffer))
	return nil
}
