// Package colour provides the RGB colour value used by every renderable, its
// hex text form and a registry that resolves named colours and aliases.
package colour

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Colour is a 24-bit RGB colour.
type Colour struct {
	Red   uint8
	Green uint8
	Blue  uint8
}

// New returns the colour with the given channels.
func New(red, green, blue uint8) Colour {
	return Colour{Red: red, Green: green, Blue: blue}
}

// String formats the colour as #rrggbb.
func (c Colour) String() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red, c.Green, c.Blue)
}

// ErrValueParse is returned when the digits after '#' are not hexadecimal.
var ErrValueParse = errors.New("invalid hex value")

// InvalidLengthError reports a colour literal that is neither 4 nor 7 runes long.
type InvalidLengthError struct {
	Length int
}

func (e *InvalidLengthError) Error() string {
	return fmt.Sprintf("invalid length %d (should be 4 or 7)", e.Length)
}

// InvalidFirstCharError reports a colour literal that does not start with '#'.
type InvalidFirstCharError struct {
	Char rune
}

func (e *InvalidFirstCharError) Error() string {
	return fmt.Sprintf("should start with '#', not '%c'", e.Char)
}

// Parse reads a colour in #RGB or #RRGGBB form. Hex digits are
// case-insensitive. Lengths are counted in runes.
func Parse(text string) (Colour, error) {
	length := utf8.RuneCountInString(text)
	if length != 4 && length != 7 {
		return Colour{}, &InvalidLengthError{Length: length}
	}

	first, size := utf8.DecodeRuneInString(text)
	if first != '#' {
		return Colour{}, &InvalidFirstCharError{Char: first}
	}

	value, err := strconv.ParseUint(text[size:], 16, 32)
	if err != nil {
		return Colour{}, ErrValueParse
	}

	if length == 4 {
		return Colour{
			Red:   uint8((value>>8)&0xf) * 0x11,
			Green: uint8((value>>4)&0xf) * 0x11,
			Blue:  uint8(value&0xf) * 0x11,
		}, nil
	}

	return Colour{
		Red:   uint8(value >> 16),
		Green: uint8(value >> 8),
		Blue:  uint8(value),
	}, nil
}

// MustParse is Parse for literals known to be valid. It panics otherwise.
func MustParse(text string) Colour {
	c, err := Parse(text)
	if err != nil {
		panic(fmt.Sprintf("colour: MustParse(%q): %v", text, err))
	}
	return c
}
