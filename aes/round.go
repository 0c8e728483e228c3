package aes

import "math/bits"

// The primitives in this file are the building blocks of one AES round over
// a state array of four columns. Column indices are reduced with &3, which
// makes them wrap around the state and lets the compiler drop bounds checks.
// None of them branch on key or data.

// RotateWordLeft8 performs RotWord() from FIPS-197, cyclically rotating the
// four bytes of w left by one position.
func RotateWordLeft8[T Word](w T) T {
	return T(bits.RotateLeft32(uint32(w), 8))
}

// SubstituteBytes applies the S-box to each byte in w, SubWord() in FIPS-197.
func SubstituteBytes[T Word](w T) T {
	return T(sbox0[uint8(w>>24)])<<24 |
		T(sbox0[uint8(w>>16)])<<16 |
		T(sbox0[uint8(w>>8)])<<8 |
		T(sbox0[uint8(w)])
}

// SubstituteAndShiftColumn performs SubBytes() and ShiftRows() for a single
// column. This is the final encryption round, which has no MixColumns().
func SubstituteAndShiftColumn[T Word](column int, state *[StateWords]T) T {
	return T(sbox0[uint8(state[(column+0)&3]>>24)])<<24 |
		T(sbox0[uint8(state[(column+1)&3]>>16)])<<16 |
		T(sbox0[uint8(state[(column+2)&3]>>8)])<<8 |
		T(sbox0[uint8(state[(column+3)&3])])
}

// InverseSubstituteAndShiftColumn performs InvSubBytes() and InvShiftRows()
// for a single column, the final decryption round.
// Rows shift right, so row r reads from column - r.
func InverseSubstituteAndShiftColumn[T Word](column int, state *[StateWords]T) T {
	return T(sbox1[uint8(state[(column+0)&3]>>24)])<<24 |
		T(sbox1[uint8(state[(column+3)&3]>>16)])<<16 |
		T(sbox1[uint8(state[(column+2)&3]>>8)])<<8 |
		T(sbox1[uint8(state[(column+1)&3])])
}

// CombineRoundColumn performs SubBytes(), ShiftRows() and MixColumns() for a
// single column using the encryption tables Enc0..Enc3.
// The constants added to column perform the row shifts.
func CombineRoundColumn[T Word](column int, state *[StateWords]T) T {
	return T(te0[uint8(state[(column+0)&3]>>24)] ^
		te1[uint8(state[(column+1)&3]>>16)] ^
		te2[uint8(state[(column+2)&3]>>8)] ^
		te3[uint8(state[(column+3)&3])])
}

// InverseCombineRoundColumn performs InvSubBytes(), InvShiftRows() and
// InvMixColumns() for a single column using the decryption tables Dec0..Dec3.
// Used with the equivalent inverse cipher, FIPS-197 section 5.3.5.
func InverseCombineRoundColumn[T Word](column int, state *[StateWords]T) T {
	return T(td0[uint8(state[(column+0)&3]>>24)] ^
		td1[uint8(state[(column+3)&3]>>16)] ^
		td2[uint8(state[(column+2)&3]>>8)] ^
		td3[uint8(state[(column+1)&3])])
}

// MergeRoundKey AddRoundKey() for one column.
func MergeRoundKey[T Word](x, y T) T {
	return x ^ y
}
