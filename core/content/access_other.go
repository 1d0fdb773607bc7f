//go:build !(linux || darwin || freebsd)

package content

import "os"

func readable(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().Perm()&0o444 != 0
}
