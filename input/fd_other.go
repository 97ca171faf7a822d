//go:build !unix

package input

import "os"

func closeFd(fd int) error {
	return os.NewFile(uintptr(fd), "input").Close()
}

func fdPath(fd int) string {
	return ""
}
