package reference

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/danmuck/gsxws/internal/protocol"
	"gopkg.in/yaml.v3"
)

var (
	ErrUnknownLocale    = errors.New("reference: unknown locale")
	ErrUnknownComponent = errors.New("reference: unknown component")
	ErrUnsupportedToken = errors.New("reference: unsupported format token")
)

//go:embed locales.yaml
var defaultLocales []byte

// Format is one locale entry, expressed as strftime patterns.
type Format struct {
	Date string `yaml:"df"`
	Time string `yaml:"tf"`
}

// Locales maps a locale such as en_US to its formats.
type Locales map[string]Format

// DefaultLocales returns the built-in table.
func DefaultLocales() Locales {
	l, err := ParseLocales(defaultLocales)
	if err != nil {
		panic(fmt.Sprintf("reference: embedded locale table: %v", err))
	}
	return l
}

func LoadLocales(path string) (Locales, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("locale table load failed (%s): %w", path, err)
	}
	l, err := ParseLocales(data)
	if err != nil {
		return nil, fmt.Errorf("locale table parse failed (%s): %w", path, err)
	}
	return l, nil
}

func ParseLocales(data []byte) (Locales, error) {
	var l Locales
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, err
	}
	return l, nil
}

// Formats resolves locale into Go layouts for payload marshalling.
func (l Locales) Formats(locale string) (protocol.Formats, error) {
	f, ok := l[locale]
	if !ok {
		return protocol.Formats{}, fmt.Errorf("%w: %q", ErrUnknownLocale, locale)
	}
	date, err := Layout(f.Date)
	if err != nil {
		return protocol.Formats{}, fmt.Errorf("%s df: %w", locale, err)
	}
	clock, err := Layout(f.Time)
	if err != nil {
		return protocol.Formats{}, fmt.Errorf("%s tf: %w", locale, err)
	}
	return protocol.Formats{Date: date, Time: clock}, nil
}

var strftimeTokens = map[byte]string{
	'd': "02",
	'm': "01",
	'y': "06",
	'Y': "2006",
	'b': "Jan",
	'B': "January",
	'H': "15",
	'I': "03",
	'M': "04",
	'S': "05",
	'p': "PM",
	'%': "%",
}

// Layout translates a strftime pattern into a Go time layout. Literal
// letters, digits and underscores are rejected since Go would read them as
// layout elements.
func Layout(pattern string) (string, error) {
	var b strings.Builder
	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' {
			if layoutSensitive(c) {
				return "", fmt.Errorf("%w: literal %q", ErrUnsupportedToken, c)
			}
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(pattern) {
			return "", fmt.Errorf("%w: trailing %%", ErrUnsupportedToken)
		}
		i++
		tok, ok := strftimeTokens[pattern[i]]
		if !ok {
			return "", fmt.Errorf("%w: %%%c", ErrUnsupportedToken, pattern[i])
		}
		b.WriteString(tok)
	}
	return b.String(), nil
}

func layoutSensitive(c byte) bool {
	return c == '_' ||
		('0' <= c && c <= '9') ||
		('a' <= c && c <= 'z') ||
		('A' <= c && c <= 'Z')
}
