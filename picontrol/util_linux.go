package picontrol

import (
	"fmt"
	"os"
	"strings"
	"unsafe"

	"golang.org/x/sys/unix"
)

// ioctlPtr issues an ioctl on f and returns the driver's return value. A
// failing call surfaces the errno captured at the call site, there is no
// global error state to consult afterwards.
func ioctlPtr(f *os.File, cmd uintptr, data unsafe.Pointer) (int, error) {
	ret, _, errNo := unix.Syscall(
		unix.SYS_IOCTL,
		f.Fd(),
		cmd,
		uintptr(data),
	)
	if errNo != 0 {
		return 0, fmt.Errorf("ioctl 0x%x failed: %w", cmd, errNo)
	}

	return int(ret), nil
}

func bytesToString(input []byte) string {
	return strings.TrimRight(string(input), "\x00")
}
