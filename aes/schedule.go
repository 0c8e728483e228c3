package aes

// RoundConstant returns Rcon[i] from FIPS-197 section 5.2 as a word, the
// constant XORed into the first word of every Nk-word group of the expanded
// key. i starts at 1; AES-128 uses up to i = 10.
func RoundConstant[T Word](i int) T {
	return T(powx[(i-1)&0xf]) << 24
}

// InverseMixColumnWithoutSubstitution performs InvMixColumns() on a single
// word, without InvSubBytes().
//
// The decryption tables Dec0..Dec3 hold InvMixColumns(InvSubBytes(x)), which
// is what the rounds need. Building the decryption key schedule (bottom of
// FIPS-197 Figure 15) needs InvMixColumns alone, so every byte goes through
// the forward S-box first, which the InvSubBytes in the tables then cancels.
// One extra lookup per byte avoids keeping a separate set of tables.
func InverseMixColumnWithoutSubstitution[T Word](w T) T {
	return T(td0[sbox0[uint8(w>>24)]] ^
		td1[sbox0[uint8(w>>16)]] ^
		td2[sbox0[uint8(w>>8)]] ^
		td3[sbox0[uint8(w)]])
}
