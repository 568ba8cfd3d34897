package machine

import (
	"strconv"
	"strings"

	"ippcode20/lang/types"
)

// parseBoolLiteral decodes a bool@ operand's text. Any spelling other than
// a case-insensitive "true" is false — this is never a parse error.
func parseBoolLiteral(text string) types.Bool {
	return types.Bool(strings.EqualFold(text, "true"))
}

// parseIntLiteral decodes an int@ operand's text: a decimal signed integer.
func parseIntLiteral(text string) (types.Int, error) {
	n, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return 0, errInvalidInput("invalid int literal %q", text)
	}
	return types.Int(n), nil
}
