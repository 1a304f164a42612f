//go:build darwin && cgo

package auth

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"runtime/cgo"
	"unsafe"
)

// confirmEvaluateDone is the LocalAuthentication reply. It runs on a
// framework-owned dispatch queue, never on the waiting goroutine.
//
//export confirmEvaluateDone
func confirmEvaluateDone(handle C.uintptr_t, ok C.int, reason *C.char) {
	latch := cgo.Handle(handle).Value().(*Latch)
	if ok != 0 {
		latch.Release(nil)
		return
	}
	latch.Release(&FailedError{Reason: takeCString(reason)})
}

// takeCString copies a malloc'd C string into Go memory and frees it.
func takeCString(s *C.char) string {
	if s == nil {
		return ""
	}
	defer C.free(unsafe.Pointer(s))
	return C.GoString(s)
}
