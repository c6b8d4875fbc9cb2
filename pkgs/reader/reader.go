// Package reader implements the recursive-descent reader that turns a
// token stream (pkgs/lexer) into a pkgs/ast.Value AST, per spec.md §4.2.
package reader

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/aledsdavies/malisp/pkgs/ast"
	"github.com/aledsdavies/malisp/pkgs/lexer"
)

// Kind tags the reader's structured errors.
type Kind int

const (
	ErrEmptyLine Kind = iota
	ErrUnexpectedDelimiter
	ErrUnbalancedDelimiter
	ErrBadInteger
	ErrBadHash
	ErrUnterminatedString
)

// Error is the reader's structured error type, in the style of the
// teacher's ParseError: a Kind plus a human-readable message and the
// position it occurred at.
type Error struct {
	Kind     Kind
	Msg      string
	Line     int
	Column   int
}

func (e *Error) Error() string {
	if e.Line == 0 {
		return e.Msg
	}
	return fmt.Sprintf("%s (line %d, column %d)", e.Msg, e.Line, e.Column)
}

func newErr(kind Kind, pos ast.Position, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Line: pos.Line, Column: pos.Column}
}

// reader walks a token slice with a cursor, as in the teacher/original
// MalReader: next() consumes and advances, peek() inspects without moving.
type reader struct {
	tokens []lexer.Token
	pos    int
}

func (r *reader) peek() (lexer.Token, bool) {
	if r.pos >= len(r.tokens) {
		return lexer.Token{}, false
	}
	return r.tokens[r.pos], true
}

func (r *reader) next() (lexer.Token, bool) {
	tok, ok := r.peek()
	if ok {
		r.pos++
	}
	return tok, ok
}

// ReadStr tokenizes text and reads the single top-level form from it. An
// empty token stream (no forms, or a comment-only line) yields an
// *Error with Kind == ErrEmptyLine.
func ReadStr(text string) (*ast.Value, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		if ute, ok := err.(*lexer.UnterminatedStringError); ok {
			return nil, &Error{Kind: ErrUnterminatedString, Msg: "unterminated string", Line: ute.Line, Column: ute.Column}
		}
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &Error{Kind: ErrEmptyLine, Msg: "empty line"}
	}
	r := &reader{tokens: tokens}
	return readForm(r)
}

// ReadAll tokenizes text once and reads every top-level form from it in
// order, for callers (like cmd/malisp's batch-file runner) that need more
// than ReadStr's single form. An input with no forms at all still yields
// ErrEmptyLine; any other input returns as many forms as are present, not
// restarting on a per-form basis.
func ReadAll(text string) ([]*ast.Value, error) {
	tokens, err := lexer.Tokenize(text)
	if err != nil {
		if ute, ok := err.(*lexer.UnterminatedStringError); ok {
			return nil, &Error{Kind: ErrUnterminatedString, Msg: "unterminated string", Line: ute.Line, Column: ute.Column}
		}
		return nil, err
	}
	if len(tokens) == 0 {
		return nil, &Error{Kind: ErrEmptyLine, Msg: "empty line"}
	}

	r := &reader{tokens: tokens}
	var forms []*ast.Value
	for r.pos < len(r.tokens) {
		form, err := readForm(r)
		if err != nil {
			return nil, err
		}
		forms = append(forms, form)
	}
	return forms, nil
}

func readForm(r *reader) (*ast.Value, error) {
	tok, ok := r.peek()
	if !ok {
		return nil, &Error{Kind: ErrUnbalancedDelimiter, Msg: "unexpected end of input"}
	}

	switch tok.Value {
	case "(":
		return readSeq(r, "(", ")", ast.List)
	case "[":
		return readSeq(r, "[", "]", ast.Vector)
	case "{":
		return readHash(r)
	case ")", "]", "}":
		pos := ast.Position{Line: tok.Line, Column: tok.Column}
		return nil, newErr(ErrUnexpectedDelimiter, pos, "unexpected delimiter %q", tok.Value)
	default:
		return readAtom(r)
	}
}

func readSeq(r *reader, start, end string, build func([]*ast.Value) *ast.Value) (*ast.Value, error) {
	startTok, _ := r.next() // consume start, already verified by caller's peek
	elems := []*ast.Value{}
	for {
		tok, ok := r.peek()
		if !ok {
			pos := ast.Position{Line: startTok.Line, Column: startTok.Column}
			return nil, newErr(ErrUnbalancedDelimiter, pos, "expected %q, got EOF", end)
		}
		if tok.Value == end {
			r.next()
			break
		}
		v, err := readForm(r)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	v := build(elems)
	return v.WithPos(ast.Position{Line: startTok.Line, Column: startTok.Column}), nil
}

func readHash(r *reader) (*ast.Value, error) {
	startTok, _ := r.peek()
	seqVal, err := readSeq(r, "{", "}", ast.List)
	if err != nil {
		return nil, err
	}
	elems := seqVal.Seq()
	pos := ast.Position{Line: startTok.Line, Column: startTok.Column}
	if len(elems)%2 != 0 {
		return nil, newErr(ErrBadHash, pos, "hash literal has an odd number of entries")
	}
	keys := make([]string, 0, len(elems)/2)
	vals := make([]*ast.Value, 0, len(elems)/2)
	for i := 0; i < len(elems); i += 2 {
		k := elems[i]
		if k.Kind() != ast.KindStr {
			return nil, newErr(ErrBadHash, pos, "hash keys must be strings")
		}
		keys = append(keys, k.Text())
		vals = append(vals, elems[i+1])
	}
	return ast.Hash(keys, vals).WithPos(pos), nil
}

var integerRegexp = regexp.MustCompile(`^[+-]?[0-9]+$`)
var stringLiteralRegexp = regexp.MustCompile(`^"(?:\\.|[^\\"])*"$`)

func readAtom(r *reader) (*ast.Value, error) {
	tok, ok := r.next()
	if !ok {
		return nil, &Error{Kind: ErrUnbalancedDelimiter, Msg: "read_atom: no token available"}
	}
	pos := ast.Position{Line: tok.Line, Column: tok.Column}

	switch tok.Value {
	case "nil":
		return ast.Nil().WithPos(pos), nil
	case "true":
		return ast.Bool(true).WithPos(pos), nil
	case "false":
		return ast.Bool(false).WithPos(pos), nil
	}

	if stringLiteralRegexp.MatchString(tok.Value) {
		unescaped := unescapeString(tok.Value[1 : len(tok.Value)-1])
		return ast.Str(unescaped).WithPos(pos), nil
	}

	if integerRegexp.MatchString(tok.Value) {
		n, err := strconv.ParseInt(tok.Value, 10, 32)
		if err != nil {
			return nil, newErr(ErrBadInteger, pos, "invalid integer literal %q", tok.Value)
		}
		return ast.Integer(int32(n)).WithPos(pos), nil
	}

	return ast.Symbol(tok.Value).WithPos(pos), nil
}

// unescapeString implements spec.md §6: only \", \\, and \n are recognized
// escapes; any other backslash sequence passes through as the escaped
// character (\x -> x).
func unescapeString(body string) string {
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			i++
			switch body[i] {
			case '"':
				out = append(out, '"')
			case '\\':
				out = append(out, '\\')
			case 'n':
				out = append(out, '\n')
			default:
				out = append(out, body[i])
			}
			continue
		}
		out = append(out, body[i])
	}
	return string(out)
}
