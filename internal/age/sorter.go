// Package age разбирает, сортирует и переводит строки возраста товаров
// ("3-6m", "2Y", "18", "2г").
package age

import (
	"math"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

var (
	rangePattern  = regexp.MustCompile(`(?i)^(\d+)-(\d+)\s*([мmYг]?)$`)
	singlePattern = regexp.MustCompile(`(?i)^(\d+)\s*([мmYг]?)$`)
)

// Descriptor - нормализованное представление строки возраста.
// Нераспознанные строки получают Months = +Inf и уходят в конец списка.
type Descriptor struct {
	Months      float64
	IsRange     bool
	UpperMonths float64
	Original    string
}

// Parse никогда не возвращает ошибку: все, что не удалось разобрать,
// становится дескриптором с бесконечным возрастом.
func Parse(s string) Descriptor {
	unknown := Descriptor{Months: math.Inf(1), Original: s}
	if s == "" {
		return unknown
	}

	if m := rangePattern.FindStringSubmatch(s); m != nil {
		low, okLow := parseNumber(m[1])
		high, okHigh := parseNumber(m[2])
		if !okLow || !okHigh {
			return unknown
		}
		k := unitMultiplier(m[3])
		return Descriptor{Months: low * k, IsRange: true, UpperMonths: high * k, Original: s}
	}

	if m := singlePattern.FindStringSubmatch(s); m != nil {
		value, ok := parseNumber(m[1])
		if !ok {
			return unknown
		}
		return Descriptor{Months: value * unitMultiplier(m[2]), Original: s}
	}

	return unknown
}

func parseNumber(digits string) (float64, bool) {
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// Годы переводятся в месяцы, месяцы и пустая единица остаются как есть.
func unitMultiplier(unit string) float64 {
	switch strings.ToLower(unit) {
	case "y", "г":
		return 12
	default:
		return 1
	}
}

// collate.Collator не потокобезопасен, поэтому доступ к нему сериализуем.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.Russian)
)

func compareLocale(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

// Compare задает полный порядок на строках возраста:
//  1. по возрастанию месяцев (для диапазонов - нижняя граница);
//  2. одиночное значение раньше диапазона;
//  3. диапазоны с равной нижней границей - по верхней;
//  4. иначе - сравнение исходных строк с учетом локали.
func Compare(a, b string) int {
	pa, pb := Parse(a), Parse(b)

	if pa.Months != pb.Months {
		if pa.Months < pb.Months {
			return -1
		}
		return 1
	}
	if pa.IsRange != pb.IsRange {
		if pb.IsRange {
			return -1
		}
		return 1
	}
	if pa.IsRange && pa.UpperMonths != pb.UpperMonths {
		if pa.UpperMonths < pb.UpperMonths {
			return -1
		}
		return 1
	}
	return compareLocale(pa.Original, pb.Original)
}

// Sort возвращает отсортированную копию.
func Sort(ages []string) []string {
	out := slices.Clone(ages)
	slices.SortStableFunc(out, Compare)
	return out
}

// SortUnique сортирует и убирает дубликаты и пустые строки.
func SortUnique(ages []string) []string {
	seen := make(map[string]struct{}, len(ages))
	out := make([]string, 0, len(ages))
	for _, a := range ages {
		if a == "" {
			continue
		}
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	slices.SortStableFunc(out, Compare)
	return out
}
