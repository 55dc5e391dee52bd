package byteio

import (
	"fmt"
	"strconv"
)

// CaretForm computes the ^-escaped printable form of a control byte:
// "^@" for NUL, "^J" for line feed, "^?" for DEL, and "^[X" for the C1
// range. Returns "" for any other byte.
func CaretForm(b byte) string {
	if b < 0x20 || b == 0x7f {
		return "^" + string(rune(b^0x40))
	} else if 0x80 <= b && b <= 0x9f {
		return "^[" + string(rune(b^0xc0))
	}
	return ""
}

// Quote renders a byte for display in dumps and traces: controls in caret
// form, other ASCII as a quoted character, and everything else in hex.
func Quote(b byte) string {
	if caret := CaretForm(b); caret != "" {
		return caret
	}
	if b < 0x80 {
		return strconv.QuoteRune(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
