// Package subpkg exposes a sample constant for tree output tests.
package subpkg

// Message exposes a sample constant.
const Message = "hi"

// Shout upper-cases a message.
func Shout(s string) string {
	return s + "!"
}
