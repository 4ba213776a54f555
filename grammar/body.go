package grammar

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/gorgo/lr"
	"golang.org/x/text/unicode/norm"
)

// ErrIllegalSymbol is returned for production bodies which cannot be split
// into terminals and variables.
var ErrIllegalSymbol = errors.New("illegal symbol")

// SymbolError reports the position of an illegal symbol within a body.
type SymbolError struct {
	Body   string
	Span   lr.Span // byte positions within Body
	Reason string
}

func (e *SymbolError) Error() string {
	return fmt.Sprintf("illegal symbol in body %q at %v: %s", e.Body, e.Span, e.Reason)
}

func (e *SymbolError) Unwrap() error {
	return ErrIllegalSymbol
}

// ParseBody splits a flat production body into symbols.
//
// An uppercase letter followed by a run of digits is a variable, any other
// single character is a terminal. The literal "ε" denotes the empty body and
// must not be combined with other symbols. Whitespace, control characters and
// invalid UTF-8 are rejected, as is the empty string.
func ParseBody(body string) (Production, error) {
	if at := invalidUTF8(body); at >= 0 {
		return nil, &SymbolError{Body: body, Span: lr.Span{uint64(at), uint64(at + 1)},
			Reason: "invalid UTF-8"}
	}
	body = norm.NFC.String(body)
	if body == EpsilonLiteral {
		return Production{}, nil
	}
	if body == "" {
		return nil, &SymbolError{Body: body, Reason: "empty body, use " + EpsilonLiteral}
	}
	stream := newRuneStream(strings.NewReader(body))
	var p Production
	for {
		r, err := stream.lookahead()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		stream.ResetOutput()
		stream.match(r)
		switch {
		case unicode.IsSpace(r) || unicode.IsControl(r):
			return nil, &SymbolError{Body: body, Span: stream.Span(), Reason: fmt.Sprintf("%#U", r)}
		case string(r) == EpsilonLiteral:
			return nil, &SymbolError{Body: body, Span: stream.Span(),
				Reason: EpsilonLiteral + " must be the entire body"}
		case unicode.IsUpper(r):
			for {
				la, err := stream.lookahead()
				if err != nil || !unicode.IsDigit(la) {
					break
				}
				stream.match(la)
			}
			p = append(p, V(stream.OutputString()))
		default:
			p = append(p, T(stream.OutputString()))
		}
	}
	tracer().Debugf("body %q => %d symbols", body, len(p))
	return p, nil
}

// invalidUTF8 returns the byte position of the first invalid UTF-8 sequence
// in s, or -1.
func invalidUTF8(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// MustParseBody is like ParseBody, but panics on illegal input.
func MustParseBody(body string) Production {
	p, err := ParseBody(body)
	if err != nil {
		panic(err)
	}
	return p
}
