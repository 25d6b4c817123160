// +build amd64,!noasm

package vector

import "golang.org/x/sys/cpu"

func init() {
	// The batch arithmetic is plain Go, but it only pays for itself where
	// the compiler can keep the four lanes in wide registers.
	if cpu.X86.HasAVX2 {
		vectorImpls = append(vectorImpls, Impl)
	}
}
