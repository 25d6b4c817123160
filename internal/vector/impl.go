// Package vector provides the batch (data-parallel) YSC1 implementation.
package vector

import "gitlab.com/yeun/ysc1/internal/api"

var vectorImpls []api.Implementation

// Register appends the implementation(s) to the provided slice, and returns
// the new slice.
func Register(impls []api.Implementation) []api.Implementation {
	return append(impls, vectorImpls...)
}
