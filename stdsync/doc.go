// Package stdsync
// Author: momentics <momentics@gmail.com>
//
// Drop-in surface with conventional names and signatures, bound to a
// process-default kernel. Code written against the standard Locker
// contract — lock guards, scoped acquisition helpers, condition-free
// algorithms — works unmodified: errors the error-returning core
// reports become panics here, mirroring the exception contract of the
// API being replaced. Build with -tags=deadlock to swap the plain
// mutex onto a deadlock detector during development.
package stdsync
