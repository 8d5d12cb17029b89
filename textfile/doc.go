/*
Package textfile loads UTF-8 text files as input for the markup engine and the
JSON colorizer.

Files are read in fragments by a background goroutine. Every fragment is
broadcast as soon as it is loaded, and Load re-assembles the fragments in file
order. Load itself is synchronous and returns the complete text.

_________________________________________________________________________

# BSD 3-Clause License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the LICENSE file for details.
*/
package textfile

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'richtext'
func tracer() tracing.Trace {
	return tracing.Select("richtext")
}
