// Command libuikit is the C ABI of the version package. Build it with
//
//	go build -buildmode=c-shared -o libuikit.so ./cmd/libuikit
//
// which also writes libuikit.h declaring getUIKitVersionNumber and
// getUIKitVersionString.
package main

import "github.com/uikit-go/uikit/internal/version"

func main() {}

// cString returns s as a NUL-terminated byte sequence.
func cString(s string) []byte {
	b := make([]byte, len(s)+1)
	copy(b, s)

	return b
}

func versionCString() []byte {
	return cString(version.String())
}
