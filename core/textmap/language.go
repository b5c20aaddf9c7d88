package textmap

import (
	"fmt"

	"golang.org/x/text/language"
)

// locale binds a language tag to the TextMap file suffixes tried in order.
type locale struct {
	tag      language.Tag
	suffixes []string
}

// locales lists the supported TextMap files. The first entry is the default.
var locales = []locale{
	{language.SimplifiedChinese, []string{"CHS", "CN"}},
	{language.TraditionalChinese, []string{"CHT"}},
	{language.English, []string{"EN"}},
	{language.Japanese, []string{"JP"}},
	{language.Korean, []string{"KR"}},
	{language.German, []string{"DE"}},
	{language.Spanish, []string{"ES"}},
	{language.French, []string{"FR"}},
	{language.Indonesian, []string{"ID"}},
	{language.Portuguese, []string{"PT"}},
	{language.Russian, []string{"RU"}},
	{language.Thai, []string{"TH"}},
	{language.Vietnamese, []string{"VI"}},
}

var matcher = func() language.Matcher {
	tags := make([]language.Tag, len(locales))
	for i, l := range locales {
		tags[i] = l.tag
	}
	return language.NewMatcher(tags)
}()

// Suffixes resolves a BCP 47 tag to the TextMap suffixes to try. An empty tag selects
// simplified Chinese. Tags with no reasonable match are rejected rather than silently
// mapped to the default.
func Suffixes(tag string) ([]string, error) {
	if tag == "" {
		return locales[0].suffixes, nil
	}

	parsed, err := language.Parse(tag)
	if err != nil {
		return nil, fmt.Errorf("invalid language %q: %w", tag, err)
	}

	_, idx, conf := matcher.Match(parsed)
	if conf == language.No {
		return nil, fmt.Errorf("unsupported language %q", tag)
	}
	return locales[idx].suffixes, nil
}
