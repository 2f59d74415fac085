// Command libpolymath builds the C shared library:
//
//	go build -buildmode=c-shared -o libpolymath.so ./cmd/libpolymath
//
// The header generated next to the library declares
//
//	char* polymath_to_math_ml(const char* source);
//	void  polymath_free(char* markup);
package main

/*
#include <stdlib.h>
#include <string.h>
*/
import "C"

import "unsafe"

// polymath_to_math_ml converts a NUL-terminated AsciiMath string. The
// result is owned by the caller and must be released with polymath_free.
// A NULL or non-UTF-8 input yields an empty string.
//
//export polymath_to_math_ml
func polymath_to_math_ml(source *C.char) *C.char {
	if source == nil {
		return C.CString("")
	}
	markup, _ := convertBytes(C.GoBytes(unsafe.Pointer(source), C.int(C.strlen(source))))
	return C.CString(markup)
}

//export polymath_free
func polymath_free(markup *C.char) {
	C.free(unsafe.Pointer(markup))
}
