package grammar

import (
	"bytes"
	"io"
	"unicode/utf8"

	"github.com/npillmayer/gorgo/lr"
)

// runeStream reads production bodies rune by rune, with one rune of lookahead.
// Matched runes are collected as the current lexeme.
type runeStream struct {
	isEof      bool
	hasNext    bool
	next       rune
	nextSize   int
	start, end uint64 // as bytes index
	reader     io.RuneReader
	writer     bytes.Buffer
}

func newRuneStream(reader io.RuneReader) *runeStream {
	return &runeStream{reader: reader}
}

func (rs *runeStream) OutputString() string {
	return rs.writer.String()
}

func (rs *runeStream) ResetOutput() {
	rs.writer.Reset()
	rs.start = rs.end
}

func (rs *runeStream) Span() lr.Span {
	return lr.Span{rs.start, rs.end}
}

func (rs *runeStream) lookahead() (r rune, err error) {
	if rs.isEof {
		return utf8.RuneError, io.EOF
	}
	if rs.hasNext {
		return rs.next, nil
	}
	var size int
	r, size, err = rs.reader.ReadRune()
	if err == io.EOF {
		rs.isEof = true
		return utf8.RuneError, err
	} else if err != nil {
		return 0, err
	}
	rs.next, rs.nextSize, rs.hasNext = r, size, true
	return
}

// match consumes the lookahead rune r.
func (rs *runeStream) match(r rune) {
	rs.writer.WriteRune(r)
	rs.end += uint64(rs.nextSize)
	rs.hasNext = false
}
