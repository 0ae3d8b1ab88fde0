//go:build darwin

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// changeTime returns the inode change time.
func changeTime(fi os.FileInfo) time.Time {
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctimespec.Sec, st.Ctimespec.Nsec)
	}
	return fi.ModTime()
}
