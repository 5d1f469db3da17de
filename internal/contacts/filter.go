package contacts

import (
	"strings"
	"time"
)

type FilterOptions struct {
	FreeWords string
	// BirthdayOn keeps only contacts whose birthday falls on this day.
	BirthdayOn time.Time
}

func Filter(ks []Karyakarta, opt FilterOptions) []Karyakarta {
	var out []Karyakarta
	for _, k := range ks {
		if !opt.BirthdayOn.IsZero() && !HasBirthdayOn(k, opt.BirthdayOn) {
			continue
		}
		if opt.FreeWords != "" {
			ok := true
			for _, w := range strings.Fields(opt.FreeWords) {
				w = strings.ToLower(w)
				if !strings.Contains(strings.ToLower(k.Name), w) &&
					!strings.Contains(k.WhatsApp, w) {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}
		}
		out = append(out, k)
	}
	return out
}

// TodaysBirthdays returns the contacts celebrating on now's calendar day.
func TodaysBirthdays(ks []Karyakarta, now time.Time) []Karyakarta {
	return Filter(ks, FilterOptions{BirthdayOn: now})
}

// HasBirthdayOn reports whether k's birthday falls on day. People born on
// 29 February celebrate on the 28th in common years.
func HasBirthdayOn(k Karyakarta, day time.Time) bool {
	dob, err := k.Birthday()
	if err != nil {
		return false
	}
	m, d := dob.Month(), dob.Day()
	if m == time.February && d == 29 && !isLeap(day.Year()) {
		d = 28
	}
	return day.Month() == m && day.Day() == d
}

// Age is the age k turns (or turned) in day's year.
func Age(k Karyakarta, day time.Time) int {
	dob, err := k.Birthday()
	if err != nil {
		return 0
	}
	return day.Year() - dob.Year()
}

func isLeap(y int) bool {
	return y%4 == 0 && (y%100 != 0 || y%400 == 0)
}
