package format

import (
	"fmt"
	"io"

	"github.com/dhamidi/kei/expr"
)

// TokenEncoder writes the token stream of a scanner, one token per
// line with its offset, kind and text. The last line is always EOF.
type TokenEncoder struct {
	w io.Writer
}

func NewTokenEncoder(w io.Writer) *TokenEncoder {
	return &TokenEncoder{w: w}
}

func (e *TokenEncoder) Encode(sc *expr.Scanner) error {
	for {
		tok := sc.Peek()
		if _, err := fmt.Fprintf(e.w, "%d\t%s\t%q\n", tok.Offset, tok.Kind, tok.Text); err != nil {
			return err
		}
		if tok.Kind == expr.TokenEOF {
			return nil
		}
		sc.Advance()
	}
}
