// Package aes implements the table-driven core of the AES block cipher, FIPS-197.
//
// It provides the per-round building blocks rather than a cipher.Block: state
// marshaling between a 16-byte block and four big-endian column words, round
// transformations that fuse SubBytes, ShiftRows and MixColumns (and their
// inverses) into four table lookups per column, the primitives needed to
// expand encryption and equivalent-inverse-cipher key schedules, and a probe
// reporting whether the processor has AES instructions.
//
// Sequencing the primitives over 10, 12 or 14 rounds is left to the caller.
// Lookups are indexed by secret data, so this path is exposed to cache-timing
// side channels; use it where hardware AES is unavailable.
package aes
