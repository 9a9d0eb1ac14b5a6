// Package secret handles short-lived sensitive input such as passwords read
// from the terminal.
package secret

// Wipe overwrites b with zeros. A nil slice is ignored.
func Wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// String returns the text of b and wipes b. The returned string cannot be
// wiped, so callers should drop it as soon as the request is sent.
func String(b []byte) string {
	s := string(b)
	Wipe(b)
	return s
}
