package i18n

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Translator resolves message keys to localized text.
type Translator struct {
	catalog   catalog.Catalog
	supported []language.Tag
	matcher   language.Matcher
}

var catalogLanguages = []language.Tag{language.English, language.Polish}

// NewTranslator builds a translator whose fallback language is defaultLocale.
func NewTranslator(defaultLocale string) (*Translator, error) {
	requested, err := language.Parse(strings.TrimSpace(defaultLocale))
	if err != nil {
		return nil, fmt.Errorf("invalid default locale %q: %w", defaultLocale, err)
	}

	_, index, confidence := language.NewMatcher(catalogLanguages).Match(requested)
	if confidence == language.No {
		return nil, fmt.Errorf("no catalog for default locale %q", defaultLocale)
	}

	defaultTag := catalogLanguages[index]
	supported := []language.Tag{defaultTag}
	for _, tag := range catalogLanguages {
		if tag != defaultTag {
			supported = append(supported, tag)
		}
	}

	messages, err := newCatalog()
	if err != nil {
		return nil, fmt.Errorf("build message catalog: %w", err)
	}

	return &Translator{
		catalog:   messages,
		supported: supported,
		matcher:   language.NewMatcher(supported),
	}, nil
}

// Translate returns the text of key in the best language for acceptLanguage.
// Unknown keys are returned unchanged.
func (t *Translator) Translate(acceptLanguage, key string) string {
	if t == nil || t.catalog == nil {
		return key
	}

	printer := message.NewPrinter(t.match(acceptLanguage), message.Catalog(t.catalog))
	return printer.Sprintf(key)
}

func (t *Translator) match(acceptLanguage string) language.Tag {
	tags, _, err := language.ParseAcceptLanguage(acceptLanguage)
	if err != nil || len(tags) == 0 {
		return t.supported[0]
	}

	_, index, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.supported[0]
	}
	return t.supported[index]
}
