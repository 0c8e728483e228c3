package aes

// Unfused reference transformations, written directly from FIPS-197 section 5
// with byte-wise GF(2⁸) arithmetic. They share nothing with the lookup tables.

// gmul performs Galois Field (256) multiplication of two bytes.
func gmul(a, b byte) byte {
	var p byte

	for range 8 {
		if b&1 != 0 {
			p ^= a
		}

		hiBitSet := a&0x80 != 0
		a <<= 1
		if hiBitSet {
			a ^= 0x1b // x^8 + x^4 + x^3 + x + 1
		}
		b >>= 1
	}

	return p
}

func columnBytes(w uint32) [4]byte {
	return [4]byte{byte(w >> 24), byte(w >> 16), byte(w >> 8), byte(w)}
}

func bytesColumn(b [4]byte) uint32 {
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// referenceMixColumn MixColumns() for one column, FIPS-197 section 5.1.3.
func referenceMixColumn(w uint32) uint32 {
	s := columnBytes(w)
	return bytesColumn([4]byte{
		gmul(0x02, s[0]) ^ gmul(0x03, s[1]) ^ s[2] ^ s[3],
		s[0] ^ gmul(0x02, s[1]) ^ gmul(0x03, s[2]) ^ s[3],
		s[0] ^ s[1] ^ gmul(0x02, s[2]) ^ gmul(0x03, s[3]),
		gmul(0x03, s[0]) ^ s[1] ^ s[2] ^ gmul(0x02, s[3]),
	})
}

// referenceInvMixColumn InvMixColumns() for one column, FIPS-197 section 5.3.3.
func referenceInvMixColumn(w uint32) uint32 {
	s := columnBytes(w)
	return bytesColumn([4]byte{
		gmul(0x0e, s[0]) ^ gmul(0x0b, s[1]) ^ gmul(0x0d, s[2]) ^ gmul(0x09, s[3]),
		gmul(0x09, s[0]) ^ gmul(0x0e, s[1]) ^ gmul(0x0b, s[2]) ^ gmul(0x0d, s[3]),
		gmul(0x0d, s[0]) ^ gmul(0x09, s[1]) ^ gmul(0x0e, s[2]) ^ gmul(0x0b, s[3]),
		gmul(0x0b, s[0]) ^ gmul(0x0d, s[1]) ^ gmul(0x09, s[2]) ^ gmul(0x0e, s[3]),
	})
}

// referenceShiftRows ShiftRows(), row r rotates left by r.
func referenceShiftRows(state [4]uint32) (out [4]uint32) {
	for c := range 4 {
		var b [4]byte
		for r := range 4 {
			b[r] = columnBytes(state[(c+r)%4])[r]
		}
		out[c] = bytesColumn(b)
	}
	return out
}

// referenceInvShiftRows InvShiftRows(), row r rotates right by r.
func referenceInvShiftRows(state [4]uint32) (out [4]uint32) {
	for c := range 4 {
		var b [4]byte
		for r := range 4 {
			b[r] = columnBytes(state[(c-r+4)%4])[r]
		}
		out[c] = bytesColumn(b)
	}
	return out
}

// referenceSubBytes SubBytes() with the S-box computed from its definition:
// the multiplicative inverse in GF(2⁸) followed by the affine transformation.
func referenceSubBytes(state [4]uint32) (out [4]uint32) {
	for c := range 4 {
		b := columnBytes(state[c])
		for r := range b {
			b[r] = referenceSbox(b[r])
		}
		out[c] = bytesColumn(b)
	}
	return out
}

func referenceSbox(x byte) byte {
	var inv byte
	if x != 0 {
		// x^254 == x^-1
		inv = 1
		for range 254 {
			inv = gmul(inv, x)
		}
	}

	var s byte
	for i := range 8 {
		bit := (inv>>i ^ inv>>((i+4)%8) ^ inv>>((i+5)%8) ^ inv>>((i+6)%8) ^ inv>>((i+7)%8) ^ 0x63>>i) & 1
		s |= bit << i
	}
	return s
}
