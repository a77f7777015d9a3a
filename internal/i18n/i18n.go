// Package i18n holds the UI string tables and language matching.
package i18n

import (
	"golang.org/x/text/language"
)

// Lang is a supported UI language tag.
type Lang string

const (
	Japanese Lang = "ja-JP"
	English  Lang = "en-US"
	Korean   Lang = "ko-KR"
)

// Default is used when nothing else matches.
const Default = Japanese

// Supported lists the languages with string tables, in matcher priority.
var Supported = []Lang{Japanese, English, Korean}

var matcher = language.NewMatcher([]language.Tag{
	language.MustParse(string(Japanese)),
	language.MustParse(string(English)),
	language.MustParse(string(Korean)),
})

// Match picks the closest supported language for a user-supplied tag
// such as "en", "en_GB" or "ko-KR". Unparseable input yields Default.
func Match(s string) Lang {
	if s == "" {
		return Default
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default
	}
	return Supported[idx]
}

// Code returns the two-letter language code, as used in store URLs.
func (l Lang) Code() string {
	tag, err := language.Parse(string(l))
	if err != nil {
		return "ja"
	}
	base, _ := tag.Base()
	return base.String()
}

// T translates key into l.
func (l Lang) T(key string) string {
	return Translate(key, l)
}

// Translator looks up UI strings for one language.
type Translator interface {
	T(key string) string
}

// Translate returns the string for key in lang. Keys without an entry
// are returned unchanged, so literal labels pass through.
func Translate(key string, lang Lang) string {
	row, ok := table[key]
	if !ok {
		return key
	}
	if s, ok := row[lang]; ok {
		return s
	}
	if s, ok := row[English]; ok {
		return s
	}
	return key
}
