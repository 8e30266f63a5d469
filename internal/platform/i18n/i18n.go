// Package i18n resolves report locales and returns message printers for them.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var supportedTags = []language.Tag{
	language.English,
	language.MustParse("pt-BR"),
}

var tagMatcher = language.NewMatcher(supportedTags)
var supportedTagSet = make(map[string]language.Tag, len(supportedTags))

func init() {
	for _, tag := range supportedTags {
		supportedTagSet[tag.String()] = tag
	}
}

// Supported returns the list of supported language tags.
func Supported() []language.Tag {
	tags := make([]language.Tag, len(supportedTags))
	copy(tags, supportedTags)
	return tags
}

// Default returns the default language tag.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for the supplied tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// ResolveTag maps a user-supplied locale onto a supported tag.
// The bool is false when value was empty or could not be matched, in which
// case the default tag is returned.
func ResolveTag(value string) (language.Tag, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return Default(), false
	}

	parsed, err := language.Parse(value)
	if err != nil {
		return Default(), false
	}
	if tag, ok := supportedTagSet[parsed.String()]; ok {
		return tag, true
	}

	_, index, confidence := tagMatcher.Match(parsed)
	if confidence == language.No {
		return Default(), false
	}
	return supportedTags[index], true
}
