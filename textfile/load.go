package textfile

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/guiguan/caster"
)

/*
BSD 3-Clause License

Copyright (c) 2020â€“21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

// Some constants for fragment size defaults
const (
	twoKb     = 2048
	sixKb     = 6144
	tenKb     = 10240
	hundredKb = 102400
	oneMb     = 1048576
)

// fragment holds a piece of a text file's content.
type fragment struct {
	content string // content of this fragment
	index   int    // sequence number of this fragment
	pos     int64  // start position of this fragment within the file
	length  int64  // length of this fragment in bytes
	err     error  // I/O error while loading this fragment
}

// textFile represents an OS file which will be loaded in fragments.
type textFile struct {
	path string         // file name
	info os.FileInfo    // result from Stat(path)
	file *os.File       // file handle
	cast *caster.Caster // broadcaster for async file loading
}

// Load reads a file, which must be a text file, and returns its content.
// Clients may indicate a recommended fragment length, which may be 0, letting
// Load select a sensible default from the file size.
//
// Fragments are loaded asynchronously and re-assembled in order. If ctx is
// cancelled before all fragments have arrived, Load returns ctx.Err().
func Load(ctx context.Context, name string, fragSize int64) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	tf, err := openFile(ctx, name)
	if err != nil {
		return "", err
	}
	size := tf.info.Size()
	if size == 0 {
		tf.file.Close()
		tf.cast.Close()
		return "", nil
	}
	frags := fragments(size, FragmentSize(size, fragSize))
	sub, ok := tf.cast.Sub(ctx, uint(len(frags)))
	if !ok {
		tf.file.Close()
		return "", fmt.Errorf("cannot subscribe to loader for %q", name)
	}
	tracer().Debugf("loading %q in %d fragments", name, len(frags))
	go tf.loadAll(frags)
	return collect(ctx, sub, len(frags))
}

// FragmentSize selects the fragment length for a file of the given size.
// A requested size in (0, 10kB] is used as given.
func FragmentSize(fileSize int64, requested int64) int64 {
	if requested > 0 && requested <= tenKb {
		return requested
	}
	switch {
	case fileSize < 64:
		return max(fileSize, 1)
	case fileSize < 1024:
		return 64
	case fileSize < tenKb:
		return 256
	case fileSize < hundredKb:
		return 512
	case fileSize < oneMb:
		return twoKb
	}
	return sixKb
}

// openFile opens an OS file and collects some useful information on it,
// checking for error conditions.
func openFile(ctx context.Context, name string) (*textFile, error) {
	fi, err := os.Stat(name)
	if err != nil {
		return nil, err
	} else if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("file %q is not a regular file", name)
	}
	file, err := os.Open(name) // just open for read access
	if err != nil {
		return nil, err
	}
	tf := &textFile{
		path: name,
		info: fi,
		file: file,
		cast: caster.New(ctx), // we will broadcast messages when fragments are loaded
	}
	return tf, nil
}

// fragments splits a file of size bytes into consecutive fragments.
func fragments(size int64, fragSize int64) []*fragment {
	frags := make([]*fragment, 0, (size+fragSize-1)/fragSize)
	for pos := int64(0); pos < size; pos += fragSize {
		frags = append(frags, &fragment{
			index:  len(frags),
			pos:    pos,
			length: min(fragSize, size-pos),
		})
	}
	return frags
}

// --- File loading goroutine ------------------------------------------------

// loadAll reads every fragment and publishes it. The caster is closed when
// all fragments have been published.
func (tf *textFile) loadAll(frags []*fragment) {
	defer tf.cast.Close()
	defer tf.file.Close()
	for _, frag := range frags {
		buf := make([]byte, frag.length)
		cnt, err := tf.file.ReadAt(buf, frag.pos)
		if err != nil && err != io.EOF {
			frag.err = fmt.Errorf("error loading text fragment at %d: %w", frag.pos, err)
		} else if int64(cnt) < frag.length {
			frag.err = fmt.Errorf("not all bytes loaded for text fragment at %d", frag.pos)
		}
		frag.content = string(buf[:cnt])
		if !tf.cast.Pub(frag) {
			tracer().Infof("loader for %q cancelled", tf.path)
			return
		}
	}
}

// collect receives n fragments and joins them in file order.
func collect(ctx context.Context, sub <-chan interface{}, n int) (string, error) {
	parts := make([]string, n)
	for received := 0; received < n; {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case m, ok := <-sub:
			if !ok {
				return "", fmt.Errorf("loader stopped after %d of %d fragments", received, n)
			}
			frag := m.(*fragment)
			if frag.err != nil {
				return "", frag.err
			}
			parts[frag.index] = frag.content
			received++
		}
	}
	return strings.Join(parts, ""), nil
}
