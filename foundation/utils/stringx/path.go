// File: path.go
// Title: Path Separator Normalization
// Description: Converts Windows-style separators and collapses separator runs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package stringx

// ToUnixPath replaces every backslash with a slash and collapses each run of
// separators into a single slash. It is a pure text transform: "." and ".."
// segments are kept and the filesystem is never consulted.
//
//	ToUnixPath(`.\path\to\file.txt`) == "./path/to/file.txt"
//	ToUnixPath("./path/to//file.txt") == "./path/to/file.txt"
func ToUnixPath(p string) string {
	buf := make([]byte, 0, len(p))
	for i := 0; i < len(p); i++ {
		c := p[i]
		if c == '\\' {
			c = '/'
		}
		if c == '/' && len(buf) > 0 && buf[len(buf)-1] == '/' {
			continue
		}
		buf = append(buf, c)
	}
	return string(buf)
}
