//go:build windows

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// changeTime returns the file creation time on Windows.
func changeTime(fi os.FileInfo) time.Time {
	if st, ok := fi.Sys().(*syscall.Win32FileAttributeData); ok {
		return time.Unix(0, st.CreationTime.Nanoseconds())
	}
	return fi.ModTime()
}
