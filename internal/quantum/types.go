package quantum

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// Bit represents a classical bit (0 or 1)
type Bit int

const (
	Zero Bit = 0
	One  Bit = 1
)

// ValidateWires checks that wires is a non-empty sequence of distinct,
// non-negative wire indices
func ValidateWires(wires []int) error {
	if len(wires) == 0 {
		return fmt.Errorf("%w: wires must be a non-empty integer sequence", ErrInvalidArgument)
	}

	seen := make(map[int]struct{}, len(wires))
	for i, w := range wires {
		if w < 0 {
			return fmt.Errorf("%w: wire %d at position %d is negative", ErrInvalidArgument, w, i)
		}
		if _, dup := seen[w]; dup {
			return fmt.Errorf("%w: wire %d appears more than once", ErrInvalidArgument, w)
		}
		seen[w] = struct{}{}
	}

	return nil
}

// ToBits converts a slice of integers to Bits, rejecting anything that is not 0 or 1
func ToBits(values []int) ([]Bit, error) {
	out := make([]Bit, len(values))
	for i, v := range values {
		if v != 0 && v != 1 {
			return nil, fmt.Errorf("%w: expected a binary array, element %d is %d", ErrInvalidArgument, i, v)
		}
		out[i] = Bit(v)
	}
	return out, nil
}

// IntToBits encodes n as a big-endian bit vector of exactly width bits,
// left-padded with zeros
func IntToBits(n, width int) ([]Bit, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: basis state must be a non-negative integer, got %d", ErrInvalidArgument, n)
	}
	if width <= 0 {
		return nil, fmt.Errorf("%w: width must be positive, got %d", ErrInvalidArgument, width)
	}
	if bits.Len(uint(n)) > width {
		return nil, fmt.Errorf("%w: cannot encode %d with %d wires", ErrEncodingOverflow, n, width)
	}

	out := make([]Bit, width)
	for i := 0; i < width; i++ {
		if (n>>uint(width-1-i))&1 == 1 {
			out[i] = One
		}
	}
	return out, nil
}

// BitsToInt decodes a big-endian bit vector back into an integer
func BitsToInt(bs []Bit) (int, error) {
	n := 0
	for i, b := range bs {
		if b != Zero && b != One {
			return 0, fmt.Errorf("%w: element %d is %d", ErrInvalidArgument, i, b)
		}
		if n > math.MaxInt>>1 {
			return 0, fmt.Errorf("%w: %d bits do not fit an int", ErrEncodingOverflow, len(bs))
		}
		n = n<<1 | int(b)
	}
	return n, nil
}

// BitsString renders bits as a string of '0' and '1', first bit first
func BitsString(bs []Bit) string {
	var sb strings.Builder
	sb.Grow(len(bs))
	for _, b := range bs {
		if b == One {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// ParseBits parses a string such as "1010" into Bits
func ParseBits(s string) ([]Bit, error) {
	out := make([]Bit, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			out[i] = Zero
		case '1':
			out[i] = One
		default:
			return nil, fmt.Errorf("%w: %q is not a bit string", ErrInvalidArgument, s)
		}
	}
	return out, nil
}

// Error is the error type returned by the quantum package
type Error struct {
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrInvalidArgument  = &Error{"invalid argument"}
	ErrEncodingOverflow = &Error{"basis state does not fit the wires"}
	ErrLengthMismatch   = &Error{"wires length and flipping state length do not match"}
	ErrUnsupportedGate  = &Error{"gate cannot be expressed in OpenQASM 2.0"}
)
