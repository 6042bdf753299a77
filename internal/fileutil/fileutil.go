// Package fileutil provides the filesystem primitives shared by the
// organizer: copying and rename-with-fallback moves.
package fileutil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"syscall"
)

// CopyFile streams src to dst with default permissions (0o644).
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}

// MoveFile renames src to dst, falling back to copy-and-remove when the
// rename crosses a filesystem boundary.
func MoveFile(src, dst string) error {
	err := os.Rename(src, dst)
	if err == nil {
		return nil
	}
	if !errors.Is(err, syscall.EXDEV) {
		return err
	}
	if err := CopyFile(src, dst); err != nil {
		_ = os.Remove(dst)
		return fmt.Errorf("copy across filesystems: %w", err)
	}
	if err := os.Remove(src); err != nil {
		return fmt.Errorf("remove source after copy: %w", err)
	}
	return nil
}
