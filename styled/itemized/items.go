/*
Package itemized offers a “pull”-interface to the runs of a styled text.
*/
package itemized

import "github.com/npillmayer/richtext/styled"

// Iterator steps through the runs of a styled text.
//
//	iter := itemized.IterateText(text)
//	for iter.Next() {
//	    content, style, from, to := iter.Run()
//	    …
//	}
type Iterator struct {
	runs   []styled.Run
	starts []uint64
	inx    int
}

// IterateText creates an iterator over the runs of text.
func IterateText(text *styled.Text) *Iterator {
	iterator := &Iterator{
		runs: text.Runs(),
	}
	var pos uint64
	for _, r := range iterator.runs {
		iterator.starts = append(iterator.starts, pos)
		pos += uint64(len(r.Text))
	}
	return iterator
}

// Next advances to the next run. It returns false after the last run.
func (it *Iterator) Next() bool {
	if it.inx >= len(it.runs) {
		return false
	}
	it.inx++
	return true
}

// Style returns the style at the current iterator position, together with
// the text indices [from…to) of the style run.
func (it *Iterator) Style() (styled.Style, uint64, uint64) {
	if it.inx == 0 {
		return styled.Style{}, 0, 0
	}
	r := it.runs[it.inx-1]
	from := it.starts[it.inx-1]
	return r.Style, from, from + uint64(len(r.Text))
}

// Run returns the text and style of the current run, together with the text
// indices [from…to) of the run.
func (it *Iterator) Run() (string, styled.Style, uint64, uint64) {
	if it.inx == 0 {
		return "", styled.Style{}, 0, 0
	}
	sty, from, to := it.Style()
	return it.runs[it.inx-1].Text, sty, from, to
}
