//go:build !unix

package term

import "errors"

// Size is not supported on this platform; callers fall back to a fixed size.
func Size(fd int) (width, height int, err error) {
	return 0, 0, errors.New("terminal size not supported on this platform")
}
