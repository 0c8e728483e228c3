package aes

// aesniBit CPUID.01H:ECX bit 25, set when AESENC and friends are supported.
// See the Intel AES-NI white paper, section "Detecting AES-NI".
const aesniBit = 1 << 25

// featureQuerier reads processor identification registers for a given leaf.
// Each host platform provides one variant, selected at build time.
type featureQuerier interface {
	QueryProcessorFeatures(leaf uint32) (eax, ebx, ecx, edx uint32)
}

// supportsAESNI confirms leaf 1 can be queried at all, then reads the AES
// feature bit from it.
func supportsAESNI(q featureQuerier) bool {
	if maxLeaf, _, _, _ := q.QueryProcessorFeatures(0); maxLeaf < 1 {
		return false
	}

	_, _, ecx, _ := q.QueryProcessorFeatures(1)
	return ecx&aesniBit != 0
}
