package formatter

import (
	"bufio"
	"strings"
	"sync"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax11"
	"github.com/npillmayer/uax/uax14"
)

var graphemesOnce sync.Once

/*
Wikipedia:

	1. |  SpaceLeft := LineWidth
	2. |  for each Word in Text
	3. |      if (Width(Word) + SpaceWidth) > SpaceLeft
	4. |           insert line break before Word in Text
	5. |           SpaceLeft := LineWidth - Width(Word)
	6. |      else
	7. |           SpaceLeft := SpaceLeft - (Width(Word) + SpaceWidth)

firstFit returns the byte positions of line breaks within a paragraph, not
including a break at the end of the paragraph.
*/
func firstFit(para string, linewidth int, context *uax11.Context) []uint64 {
	//
	graphemesOnce.Do(grapheme.SetupGraphemeClasses)
	linewrap := uax14.NewLineWrap()
	segmenter := segment.NewSegmenter(linewrap)
	spaceleft := linewidth
	segmenter.Init(bufio.NewReader(strings.NewReader(para)))
	breaks := make([]uint64, 0, 20)
	prevpos := 0
	linestart := true
	for segmenter.Next() {
		frag := string(segmenter.Bytes())
		gstr := grapheme.StringFromString(frag)
		fraglen := uax11.StringWidth(gstr, context)
		if fraglen >= spaceleft {
			if linestart { // fragment is too long for a line
				pos := prevpos + len(frag)
				breaks = append(breaks, uint64(pos))
				T().Debugf("break @ %d", pos)
				spaceleft = linewidth
			} else { // fragment overshoots line
				breaks = append(breaks, uint64(prevpos))
				T().Debugf("break @ %d", prevpos)
				spaceleft = linewidth - fraglen
			}
		} else { // no break, just append the fragment to the current line
			spaceleft -= fraglen
			linestart = false
		}
		prevpos += len(frag)
	}
	if n := len(breaks); n > 0 && breaks[n-1] >= uint64(len(para)) {
		breaks = breaks[:n-1]
	}
	return breaks
}
