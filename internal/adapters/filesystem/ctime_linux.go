//go:build linux

package filesystem

import (
	"os"
	"syscall"
	"time"
)

// changeTime returns the inode change time, the closest Linux analogue to the
// "creation time" ordering criterion.
func changeTime(fi os.FileInfo) time.Time {
	if st, ok := fi.Sys().(*syscall.Stat_t); ok {
		return time.Unix(st.Ctim.Sec, st.Ctim.Nsec)
	}
	return fi.ModTime()
}
