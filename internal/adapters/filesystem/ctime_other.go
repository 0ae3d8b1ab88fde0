//go:build !linux && !darwin && !windows

package filesystem

import (
	"os"
	"time"
)

func changeTime(fi os.FileInfo) time.Time {
	return fi.ModTime()
}
