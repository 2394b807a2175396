//go:build cgo

package main

// #include <stdlib.h>
// #include <string.h>
import "C"

import (
	"sync"
	"unsafe"

	"github.com/uikit-go/uikit/internal/version"
)

// The C copy lives for the rest of the process and is never freed.
var versionString = sync.OnceValue(func() *C.uchar {
	b := versionCString()

	p := C.malloc(C.size_t(len(b)))
	C.memcpy(p, unsafe.Pointer(&b[0]), C.size_t(len(b)))

	return (*C.uchar)(p)
})

//export getUIKitVersionNumber
func getUIKitVersionNumber() C.double {
	return C.double(version.Number())
}

//export getUIKitVersionString
func getUIKitVersionString() *C.uchar {
	return versionString()
}
