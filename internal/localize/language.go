package localize

import "github.com/mediatext/mediatext/internal/catalog"

// unknownLanguage is used when a title list carries no language at all.
const unknownLanguage = "x-other"

// MainLanguage returns the language of the main title, falling back to the
// first title's language and then to "x-other".
func MainLanguage(titles []catalog.Title) string {
	for _, t := range titles {
		if t.Type == catalog.TitleTypeMain {
			return t.LanguageCode
		}
	}
	if len(titles) > 0 {
		return titles[0].LanguageCode
	}
	return unknownLanguage
}

// GuessOriginLanguage maps the main title language to the languages the
// entity was most likely produced in, most likely first. Transliteration
// markers map to the language they transliterate.
func GuessOriginLanguage(langCode string) []string {
	switch langCode {
	case unknownLanguage, "x-jat":
		return []string{"ja"}
	case "x-zht":
		return []string{"zh-hans", "zh-hant", "zh-c-mcm", "zh"}
	case "x-kot":
		return []string{"ko"}
	case "x-tht":
		return []string{"th"}
	default:
		return []string{langCode}
	}
}
