package domain

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxSlugLen bounds a derived slug before any collision suffix is added.
const MaxSlugLen = 20

var commonWords = toSet(`the of to a and i in you it is that for on with was this be he are as have
we at me my but not what by they from so all do your one if just like there no or can about an up
get out when will who dont his more she has which now how were go had would here them her him been
some well their only then got other also than come going did into make very im over because made
much really where us why way could our even too its being am may such those through use does thing
things find again cant around between ever every makes goes went heres theres any youre puzzle`)

func toSet(words string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range strings.Fields(words) {
		set[w] = struct{}{}
	}
	return set
}

// Slugify lowercases s, folds accented letters to ASCII, drops punctuation
// and joins the remaining words with hyphens. Underscores stay inside words.
func Slugify(s string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn))), s)
	if err != nil {
		folded = s
	}

	var words []string
	var b strings.Builder
	flush := func() {
		if b.Len() > 0 {
			words = append(words, b.String())
			b.Reset()
		}
	}

	for _, r := range strings.ToLower(folded) {
		switch {
		case r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'):
			b.WriteRune(r)
		case unicode.IsSpace(r) || r == '-':
			flush()
		}
	}
	flush()

	return strings.Trim(strings.Join(words, "-"), "_")
}

// TitleToSlug picks a significant word or two from a puzzle title for use as
// a short identifier, e.g. a chat channel name. The result is at most
// MaxSlugLen characters.
func TitleToSlug(title string) string {
	slug := Slugify(title)
	if slug == "" {
		return "puzzle"
	}

	parts := strings.Split(slug, "-")
	var picked []string
	for _, part := range parts {
		if _, common := commonWords[part]; common {
			continue
		}
		picked = append(picked, part)
		if len(part) >= 5 || len(picked) >= 2 {
			break
		}
	}
	if len(picked) == 0 {
		if len(parts) > 2 {
			parts = parts[:2]
		}
		picked = parts
	}

	slug = strings.Join(picked, "-")
	if len(slug) > MaxSlugLen {
		slug = strings.TrimRight(slug[:MaxSlugLen], "-_")
	}
	return slug
}
