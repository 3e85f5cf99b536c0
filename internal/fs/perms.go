package fs

import "os"

// PermissionString renders a mode as a type character followed by the
// owner, group and other rwx triplets.
func PermissionString(mode os.FileMode) string {
	buf := make([]byte, 10)
	switch {
	case mode&os.ModeDir != 0:
		buf[0] = 'd'
	case mode&os.ModeSymlink != 0:
		buf[0] = 'l'
	default:
		buf[0] = '-'
	}

	const rwx = "rwx"
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i%3]
		} else {
			buf[i+1] = '-'
		}
	}
	return string(buf)
}
