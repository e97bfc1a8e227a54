package parser

import (
	"fmt"
	"strings"

	"github.com/sqlc-dev/litesql/token"
)

// Error is a single syntax diagnostic.
type Error struct {
	Message string
	Pos     token.Position
}

func (e Error) Error() string {
	return fmt.Sprintf("%s at line %d, column %d", e.Message, e.Pos.Line, e.Pos.Column)
}

// ErrorList is an ordered list of diagnostics.
type ErrorList []Error

func (l ErrorList) Error() string {
	msgs := make([]string, len(l))
	for i, e := range l {
		msgs[i] = e.Error()
	}
	return "parse errors: " + strings.Join(msgs, "; ")
}

// Err returns l as an error, or nil when the list is empty.
func (l ErrorList) Err() error {
	if len(l) == 0 {
		return nil
	}
	return l
}
