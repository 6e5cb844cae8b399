// Package i18n provides the static string catalogs used by the form screens.
package i18n

import (
	"sort"
	"strings"
)

// Key identifies a display string.
type Key string

// Keys shown on the form screen.
const (
	EnterName Key = "enter_name"
	ErrorName Key = "error_name"
	Age       Key = "age"
	Gender    Key = "gender"
	Male      Key = "male"
	Female    Key = "female"
	Subscribe Key = "subscribe"
	Send      Key = "send"

	SummaryTitle        Key = "summary_title"
	SummaryName         Key = "summary_name"
	SummaryAge          Key = "summary_age"
	SummaryGender       Key = "summary_gender"
	SummarySubscription Key = "summary_subscription"
	Yes                 Key = "yes"
	No                  Key = "no"

	StatusCopied               Key = "status_copied"
	StatusClipboardUnavailable Key = "status_clipboard_unavailable"
)

// DefaultLocale is used when a requested locale has no catalog.
const DefaultLocale = "en"

var catalogs = map[string]map[Key]string{
	"en": {
		EnterName:           "Enter your name",
		ErrorName:           "Name must not be empty",
		Age:                 "Age",
		Gender:              "Gender",
		Male:                "Male",
		Female:              "Female",
		Subscribe:           "Subscribe to newsletter",
		Send:                "Send",
		SummaryTitle:        "Summary",
		SummaryName:         "Name",
		SummaryAge:          "Age",
		SummaryGender:       "Gender",
		SummarySubscription: "Subscription",
		Yes:                 "yes",
		No:                  "no",

		StatusCopied:               "summary copied",
		StatusClipboardUnavailable: "clipboard unavailable",
	},
	"ru": {
		EnterName:           "Введите имя",
		ErrorName:           "Имя не может быть пустым",
		Age:                 "Возраст",
		Gender:              "Пол",
		Male:                "Мужской",
		Female:              "Женский",
		Subscribe:           "Подписаться на рассылку",
		Send:                "Отправить",
		SummaryTitle:        "Итог",
		SummaryName:         "Имя",
		SummaryAge:          "Возраст",
		SummaryGender:       "Пол",
		SummarySubscription: "Подписка",
		Yes:                 "да",
		No:                  "нет",

		StatusCopied:               "итог скопирован",
		StatusClipboardUnavailable: "буфер обмена недоступен",
	},
}

// Catalog resolves keys for one locale.
type Catalog struct {
	locale  string
	strings map[Key]string
}

// Lookup returns the catalog for locale, falling back to DefaultLocale.
// Region suffixes ("ru_RU.UTF-8", "en-US") are ignored.
func Lookup(locale string) Catalog {
	lang := normalize(locale)
	if table, ok := catalogs[lang]; ok {
		return Catalog{locale: lang, strings: table}
	}
	return Catalog{locale: DefaultLocale, strings: catalogs[DefaultLocale]}
}

// Locale reports the locale actually served by the catalog.
func (c Catalog) Locale() string {
	if c.locale == "" {
		return DefaultLocale
	}
	return c.locale
}

// Text returns the display text for key. Unknown keys render as the key itself.
func (c Catalog) Text(key Key) string {
	table := c.strings
	if table == nil {
		table = catalogs[DefaultLocale]
	}
	if v, ok := table[key]; ok {
		return v
	}
	return string(key)
}

// Supported reports whether locale has its own catalog.
func Supported(locale string) bool {
	_, ok := catalogs[normalize(locale)]
	return ok
}

// Locales lists the available catalogs in sorted order.
func Locales() []string {
	out := make([]string, 0, len(catalogs))
	for lang := range catalogs {
		out = append(out, lang)
	}
	sort.Strings(out)
	return out
}

func normalize(locale string) string {
	lang := strings.ToLower(strings.TrimSpace(locale))
	if i := strings.IndexAny(lang, "_-."); i >= 0 {
		lang = lang[:i]
	}
	return lang
}
