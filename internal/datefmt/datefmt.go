// Package datefmt renders ISO-8601 timestamps as locale-aware display
// strings: numeric year and day, short month name, two-digit hour and
// minute in the locale's native hour cycle.
package datefmt

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// InvalidDate is returned when the timestamp does not parse.
const InvalidDate = "Invalid Date"

// localeData holds the pieces that differ between supported locales.
type localeData struct {
	months  [12]string
	pattern string // verbs: %d day, %m month, %y year, %t time
	hour12  bool
}

var locales = map[string]localeData{
	"en": {
		months:  [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
		pattern: "%m %d, %y, %t",
		hour12:  true,
	},
	"de": {
		months:  [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		pattern: "%d. %m %y, %t",
	},
	"fr": {
		months:  [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		pattern: "%d %m %y, %t",
	},
	"es": {
		months:  [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sep", "oct", "nov", "dic"},
		pattern: "%d %m %y, %t",
	},
	"it": {
		months:  [12]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"},
		pattern: "%d %m %y, %t",
	},
	"pt": {
		months:  [12]string{"jan.", "fev.", "mar.", "abr.", "mai.", "jun.", "jul.", "ago.", "set.", "out.", "nov.", "dez."},
		pattern: "%d de %m de %y, %t",
	},
	"nl": {
		months:  [12]string{"jan.", "feb.", "mrt.", "apr.", "mei", "jun.", "jul.", "aug.", "sep.", "okt.", "nov.", "dec."},
		pattern: "%d %m %y, %t",
	},
	"ja": {
		months:  [12]string{"1月", "2月", "3月", "4月", "5月", "6月", "7月", "8月", "9月", "10月", "11月", "12月"},
		pattern: "%y年%m%d日 %t",
	},
}

// matcher resolves arbitrary BCP 47 tags ("pt-BR", "de-AT") to the closest
// supported base locale. The order mirrors supportedKeys: index 0 is the
// fallback for anything unrecognized.
var (
	supportedKeys = []string{"en", "de", "fr", "es", "it", "pt", "nl", "ja"}
	matcher       = func() language.Matcher {
		tags := make([]language.Tag, len(supportedKeys))
		for i, k := range supportedKeys {
			tags[i] = language.MustParse(k)
		}
		return language.NewMatcher(tags)
	}()
)

// resolve maps a locale tag to the locale table entry, falling back to en.
func resolve(locale string) localeData {
	tag, err := language.Parse(locale)
	if err != nil {
		return locales["en"]
	}
	_, idx, _ := matcher.Match(tag)
	return locales[supportedKeys[idx]]
}

// Format renders an ISO-8601 timestamp for the given locale tag.
// Unparseable timestamps yield InvalidDate; the caller displays it as-is.
func Format(iso string, locale string) string {
	t, err := time.Parse(time.RFC3339, iso)
	if err != nil {
		return InvalidDate
	}

	ld := resolve(locale)

	var clock string
	if ld.hour12 {
		hour := t.Hour() % 12
		if hour == 0 {
			hour = 12
		}
		period := "AM"
		if t.Hour() >= 12 {
			period = "PM"
		}
		clock = fmt.Sprintf("%02d:%02d %s", hour, t.Minute(), period)
	} else {
		clock = fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}

	out := make([]byte, 0, 32)
	pattern := ld.pattern
	for i := 0; i < len(pattern); i++ {
		if pattern[i] != '%' || i+1 >= len(pattern) {
			out = append(out, pattern[i])
			continue
		}
		i++
		switch pattern[i] {
		case 'd':
			out = append(out, fmt.Sprintf("%d", t.Day())...)
		case 'm':
			out = append(out, ld.months[t.Month()-1]...)
		case 'y':
			out = append(out, fmt.Sprintf("%d", t.Year())...)
		case 't':
			out = append(out, clock...)
		default:
			out = append(out, '%', pattern[i])
		}
	}
	return string(out)
}
