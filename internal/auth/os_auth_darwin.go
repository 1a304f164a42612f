//go:build darwin && cgo

package auth

/*
#cgo CFLAGS: -x objective-c -fobjc-arc
#cgo LDFLAGS: -framework Foundation -framework LocalAuthentication
#include <stdint.h>
#include <stdlib.h>
#include <string.h>
#import <Foundation/Foundation.h>
#import <LocalAuthentication/LocalAuthentication.h>

extern void confirmEvaluateDone(uintptr_t handle, int ok, char *reason);

static char *confirmCopyReason(NSError *err) {
	if (err == nil) {
		return NULL;
	}
	NSString *desc = [err localizedDescription];
	if (desc == nil || [desc length] == 0) {
		return NULL;
	}
	return strdup([desc UTF8String]);
}

static int confirmCanEvaluate(char **reason) {
	@autoreleasepool {
		LAContext *context = [[LAContext alloc] init];
		NSError *err = nil;
		if ([context canEvaluatePolicy:LAPolicyDeviceOwnerAuthentication error:&err]) {
			return 1;
		}
		*reason = confirmCopyReason(err);
		return 0;
	}
}

static void confirmEvaluate(uintptr_t handle, const char *reason) {
	@autoreleasepool {
		LAContext *context = [[LAContext alloc] init];
		NSString *text = [NSString stringWithUTF8String:reason];
		// The reply block holds the only strong reference to context;
		// releasing it earlier cancels the prompt.
		[context evaluatePolicy:LAPolicyDeviceOwnerAuthentication
		        localizedReason:text
		                  reply:^(BOOL success, NSError *err) {
			char *why = success ? NULL : confirmCopyReason(err);
			[context invalidate];
			confirmEvaluateDone(handle, success ? 1 : 0, why);
		}];
	}
}
*/
import "C"

import (
	"context"
	"runtime/cgo"
	"unsafe"
)

// localAuthenticator uses the LocalAuthentication framework with the
// device-owner policy: Touch ID when enrolled, the login password otherwise.
type localAuthenticator struct{}

func newPlatformAuthenticator() Authenticator {
	return &localAuthenticator{}
}

// CanEvaluate asks LocalAuthentication whether the policy can run.
func (a *localAuthenticator) CanEvaluate() error {
	var reason *C.char
	if C.confirmCanEvaluate(&reason) == 1 {
		return nil
	}
	return &UnavailableError{Reason: takeCString(reason)}
}

// Evaluate starts the asynchronous policy evaluation and waits for its reply.
func (a *localAuthenticator) Evaluate(ctx context.Context, reason string) error {
	latch := NewLatch()
	handle := cgo.NewHandle(latch)

	text := C.CString(reason)
	defer C.free(unsafe.Pointer(text))
	C.confirmEvaluate(C.uintptr_t(handle), text)

	err := latch.Wait(ctx)
	// A reply may still arrive after cancellation, so the handle must outlive it.
	if latch.Released() {
		handle.Delete()
	}
	return err
}
