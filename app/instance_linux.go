//go:build linux

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"golang.org/x/sys/unix"
)

// AcquireInstanceLock takes an exclusive non-blocking flock so a second
// process exits instead of fighting over the mouse and screen. The returned
// release func unlocks and removes the lock file.
func AcquireInstanceLock() (func(), error) {
	dir := xdg.RuntimeDir
	if dir == "" {
		dir = os.TempDir()
	}
	path := filepath.Join(dir, "deltamon.lock")
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("app: open instance lock: %w", err)
	}
	if err := unix.Flock(int(f.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		f.Close()
		return nil, fmt.Errorf("app: another instance holds %s: %w", path, err)
	}
	release := func() {
		_ = unix.Flock(int(f.Fd()), unix.LOCK_UN)
		f.Close()
		_ = os.Remove(path)
	}
	return release, nil
}
