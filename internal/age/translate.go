package age

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Ключи сообщений совпадают с русскими строками по умолчанию:
// если перевода нет, пользователь увидит русский вариант.
const (
	keyMonths     = "%s мес."
	keyMonthRange = "%s-%s мес."
	keyYears      = "%d г."
	keyYearOne    = "год"
	keyYearFew    = "года"
	keyYearMany   = "лет"
)

var (
	translateRange = regexp.MustCompile(`(?i)^(\d+)\s*-\s*(\d+)\s*([mм]?)$`)
	translateYear  = regexp.MustCompile(`(?i)^(\d+)\s*([yг])$`)
	translateMonth = regexp.MustCompile(`(?i)^(\d+)\s*([mм])$`)
	translateBare  = regexp.MustCompile(`^(\d+)$`)
)

// Localizer - поиск перевода по ключу. *message.Printer ему удовлетворяет.
type Localizer interface {
	Sprintf(key message.Reference, a ...interface{}) string
}

// Supported - языки, для которых есть переводы строк возраста.
var Supported = []language.Tag{language.Russian, language.Kazakh, language.English}

var messages = newCatalog()

func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(language.Russian))

	must(b.SetString(language.Russian, keyMonths, "%s мес."))
	must(b.SetString(language.Russian, keyMonthRange, "%s-%s мес."))
	must(b.Set(language.Russian, keyYears, plural.Selectf(1, "%d",
		"one", "%d год",
		"few", "%d года",
		"many", "%d лет",
		"other", "%d года",
	)))
	must(b.SetString(language.Russian, keyYearOne, "год"))
	must(b.SetString(language.Russian, keyYearFew, "года"))
	must(b.SetString(language.Russian, keyYearMany, "лет"))

	must(b.SetString(language.Kazakh, keyMonths, "%s ай"))
	must(b.SetString(language.Kazakh, keyMonthRange, "%s-%s ай"))
	must(b.SetString(language.Kazakh, keyYears, "%d жас"))
	must(b.SetString(language.Kazakh, keyYearOne, "жас"))
	must(b.SetString(language.Kazakh, keyYearFew, "жас"))
	must(b.SetString(language.Kazakh, keyYearMany, "жас"))

	must(b.SetString(language.English, keyMonths, "%s mo."))
	must(b.SetString(language.English, keyMonthRange, "%s-%s mo."))
	must(b.Set(language.English, keyYears, plural.Selectf(1, "%d",
		"one", "%d yr",
		"other", "%d yrs",
	)))
	must(b.SetString(language.English, keyYearOne, "yr"))
	must(b.SetString(language.English, keyYearFew, "yrs"))
	must(b.SetString(language.English, keyYearMany, "yrs"))

	return b
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// NewLocalizer возвращает принтер сообщений для языка tag.
func NewLocalizer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// MatchLanguage выбирает поддерживаемый язык по строкам вида "kk" или
// заголовку Accept-Language. По умолчанию - русский.
func MatchLanguage(preferred ...string) language.Tag {
	matcher := language.NewMatcher(Supported)
	tag, _ := language.MatchStrings(matcher, preferred...)
	base, _ := tag.Base()
	for _, t := range Supported {
		if b, _ := t.Base(); b == base {
			return t
		}
	}
	return language.Russian
}

// Translate превращает строку возраста в локализованную подпись.
// Нераспознанный ввод возвращается без изменений.
func Translate(s string, l Localizer) string {
	if s == "" {
		return ""
	}

	if m := translateRange.FindStringSubmatch(s); m != nil {
		return l.Sprintf(keyMonthRange, m[1], m[2])
	}
	if m := translateYear.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return l.Sprintf(keyYears, n)
		}
	}
	if m := translateMonth.FindStringSubmatch(s); m != nil {
		return l.Sprintf(keyMonths, m[1])
	}
	if m := translateBare.FindStringSubmatch(s); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			// голое число до 12 на витрине означает годы
			if n >= 1 && n <= 12 {
				return l.Sprintf(keyYears, n)
			}
			return l.Sprintf(keyMonths, strconv.Itoa(n))
		}
	}

	switch {
	case strings.HasSuffix(s, "года"):
		return strings.TrimSuffix(s, "года") + l.Sprintf(keyYearFew)
	case strings.HasSuffix(s, "год"):
		return strings.TrimSuffix(s, "год") + l.Sprintf(keyYearOne)
	case strings.HasSuffix(s, "лет"):
		return strings.TrimSuffix(s, "лет") + l.Sprintf(keyYearMany)
	}
	return s
}
