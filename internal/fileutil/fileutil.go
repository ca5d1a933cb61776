package fileutil

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// WriteFileLocked writes data to path as a full overwrite, holding a sidecar
// advisory lock so two creates racing on the same path serialize instead of
// interleaving their bytes. Overwriting existing content is expected
// behavior, not an error; backups are the caller's concern.
func WriteFileLocked(path string, data []byte) error {
	lock := flock.New(path + ".lock")
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("lock %q: %w", lock.Path(), err)
	}
	defer func() {
		_ = lock.Unlock()
		_ = os.Remove(lock.Path())
	}()

	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := out.Write(data); err != nil {
		return err
	}
	return out.Close()
}
