//go:build amd64 && !purego

package aes

func cpuid(eaxArg, ecxArg uint32) (eax, ebx, ecx, edx uint32)

type cpuidQuerier struct{}

func (cpuidQuerier) QueryProcessorFeatures(leaf uint32) (eax, ebx, ecx, edx uint32) {
	return cpuid(leaf, 0)
}

// ProcessorSupportsHardwareAES reports whether the processor implements the
// AES-NI instructions. CPUID is executed on every call; callers wanting a
// single answer for the process lifetime should keep the result.
func ProcessorSupportsHardwareAES() bool {
	return supportsAESNI(cpuidQuerier{})
}
