package handle

import (
	"fmt"
	"math/rand/v2"
)

// Token correlates an outbound portal request with the asynchronous
// Response signal later delivered for it. The portal embeds the token
// in the request object path, so only member-name characters are
// allowed.
type Token string

const (
	tokenPrefix  = "ashpd_"
	randomLength = 10
	alphanumeric = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"
)

// InvalidCharError reports the first token character outside [A-Za-z0-9_].
type InvalidCharError struct {
	Char rune
}

func (e *InvalidCharError) Error() string {
	return fmt.Sprintf("invalid character %q in handle token", e.Char)
}

// Parse validates value as a handle token.
func Parse(value string) (Token, error) {
	for _, r := range value {
		if !isTokenChar(r) {
			return "", &InvalidCharError{Char: r}
		}
	}
	return Token(value), nil
}

func isTokenChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z',
		r >= 'A' && r <= 'Z',
		r >= '0' && r <= '9',
		r == '_':
		return true
	}
	return false
}

// Generate returns a fresh random token. The random source is explicit
// so tests can seed it; a nil source falls back to the shared
// generator.
func Generate(rng *rand.Rand) Token {
	buf := make([]byte, randomLength)
	for i := range buf {
		if rng != nil {
			buf[i] = alphanumeric[rng.IntN(len(alphanumeric))]
		} else {
			buf[i] = alphanumeric[rand.IntN(len(alphanumeric))]
		}
	}
	return Token(tokenPrefix + string(buf))
}

func (t Token) String() string {
	return string(t)
}
