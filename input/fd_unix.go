//go:build unix

package input

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

func closeFd(fd int) error {
	return unix.Close(fd)
}

// fdPath resolves a descriptor back to a filesystem path where the kernel
// exposes it. Returns "" when it cannot be resolved.
func fdPath(fd int) string {
	p, err := os.Readlink(fmt.Sprintf("/proc/self/fd/%d", fd))
	if err != nil {
		return ""
	}
	return p
}
