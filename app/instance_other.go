//go:build !linux

package app

// AcquireInstanceLock is a no-op on platforms without flock semantics.
func AcquireInstanceLock() (func(), error) {
	return func() {}, nil
}
