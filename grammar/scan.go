package grammar

/*
BSD License

Copyright (c) 2019–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"strings"
	"sync"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
	"golang.org/x/text/unicode/norm"
)

// ErrSyntax is returned for grammar text which does not follow the rule format.
var ErrSyntax = errors.New("grammar syntax error")

// Token types of the grammar text format
const (
	tokWord int = iota + 1
	tokArrow
	tokBar
	tokEnd
)

var tokenNames = map[int]string{
	tokWord:  "production body",
	tokArrow: "'->'",
	tokBar:   "'|'",
	tokEnd:   "end of rule",
}

var lexerOnce sync.Once // monitors one-time creation of the lexer
var textLexer *lexmachine.Lexer
var textLexerErr error

// lexer creates the lexmachine lexer for the grammar text format. Rules end at
// a newline or ';', comments start with '#'. The arrow has to be separated from
// its neighbours by whitespace.
func lexer() (*lexmachine.Lexer, error) {
	lexerOnce.Do(func() {
		lx := lexmachine.NewLexer()
		lx.Add([]byte(`#[^\n]*`), skip)
		lx.Add([]byte(`( |\t|\r)+`), skip)
		lx.Add([]byte(`\n|;`), makeToken(tokEnd))
		lx.Add([]byte(`->`), makeToken(tokArrow))
		lx.Add([]byte(`\|`), makeToken(tokBar))
		lx.Add([]byte(`[^ \t\r\n|;#]+`), makeToken(tokWord))
		if textLexerErr = lx.Compile(); textLexerErr == nil {
			textLexer = lx
		}
	})
	return textLexer, textLexerErr
}

func skip(*lexmachine.Scanner, *machines.Match) (interface{}, error) {
	return nil, nil
}

func makeToken(id int) lexmachine.Action {
	return func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(id, string(m.Bytes), m), nil
	}
}

// ReadText reads a grammar in text format:
//
//	# comment
//	S -> aSb | A
//	A -> S | a ; B -> ε
//
// Rules for the same variable accumulate. A rule with an empty right-hand
// side declares a variable without productions.
func ReadText(r io.Reader) (*Grammar, error) {
	input, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return ParseText(string(input))
}

// ParseText is ReadText for string input.
func ParseText(input string) (*Grammar, error) {
	input = norm.NFC.String(input)
	input = strings.ReplaceAll(input, "→", "->")
	lx, err := lexer()
	if err != nil {
		return nil, err
	}
	scan, err := lx.Scanner([]byte(input))
	if err != nil {
		return nil, err
	}
	p := &ruleParser{g: New()}
	for tok, err, eof := scan.Next(); !eof; tok, err, eof = scan.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			return nil, fmt.Errorf("%w: unexpected input at line %d, column %d",
				ErrSyntax, ui.FailLine, ui.FailColumn)
		} else if err != nil {
			return nil, err
		}
		if err = p.consume(tok.(*lexmachine.Token)); err != nil {
			return nil, err
		}
	}
	if err = p.finish(); err != nil {
		return nil, err
	}
	tracer().Infof("read grammar with %d variables", len(p.g.Variables()))
	p.g.Dump()
	return p.g, nil
}

// ruleParser assembles rules from a token stream.
//
//	rule → WORD '->' [ WORD { '|' WORD } ] END
type ruleParser struct {
	g     *Grammar
	state int
	lhs   string
}

const (
	expectLHS = iota
	expectArrow
	expectBodyOrEnd
	expectBody
	expectBarOrEnd
)

func (rp *ruleParser) consume(token *lexmachine.Token) error {
	lexeme := string(token.Lexeme)
	unexpected := func() error {
		return fmt.Errorf("%w: line %d, column %d: unexpected %s %q",
			ErrSyntax, token.StartLine, token.StartColumn, tokenNames[token.Type], lexeme)
	}
	switch rp.state {
	case expectLHS:
		switch token.Type {
		case tokEnd:
			return nil // empty line
		case tokWord:
			if err := checkVariableName(lexeme); err != nil {
				return fmt.Errorf("line %d: %w", token.StartLine, err)
			}
			rp.lhs = lexeme
			rp.g.Declare(lexeme)
			rp.state = expectArrow
			return nil
		}
	case expectArrow:
		if token.Type == tokArrow {
			rp.state = expectBodyOrEnd
			return nil
		}
	case expectBodyOrEnd, expectBody:
		if token.Type == tokWord {
			body, err := ParseBody(lexeme)
			if err != nil {
				return fmt.Errorf("line %d: %w", token.StartLine, err)
			}
			rp.g.Add(rp.lhs, body)
			rp.state = expectBarOrEnd
			return nil
		}
		if token.Type == tokEnd && rp.state == expectBodyOrEnd {
			rp.state = expectLHS
			return nil
		}
	case expectBarOrEnd:
		switch token.Type {
		case tokBar:
			rp.state = expectBody
			return nil
		case tokEnd:
			rp.state = expectLHS
			return nil
		}
	}
	return unexpected()
}

func (rp *ruleParser) finish() error {
	switch rp.state {
	case expectLHS, expectBodyOrEnd, expectBarOrEnd:
		return nil
	}
	return fmt.Errorf("%w: incomplete rule for %s at end of input", ErrSyntax, rp.lhs)
}
