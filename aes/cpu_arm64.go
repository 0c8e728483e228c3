//go:build !darwin && arm64 && !purego

package aes

import "golang.org/x/sys/cpu"

// ProcessorSupportsHardwareAES reports whether the processor implements the
// ARMv8 Cryptography Extension AES instructions.
// There is no CPUID here; golang.org/x/sys/cpu reads HWCAP from the kernel.
func ProcessorSupportsHardwareAES() bool {
	return cpu.ARM64.HasAES
}
