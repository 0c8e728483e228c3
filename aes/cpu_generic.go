//go:build !(amd64 || arm64) || purego

package aes

// ProcessorSupportsHardwareAES reports false: either no query mechanism is
// implemented for this platform, or the build disabled hardware paths with
// the purego tag. The table-driven path is always correct.
func ProcessorSupportsHardwareAES() bool {
	return false
}
