package helpers

import (
	"regexp"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Naira is the default currency symbol of the marketplace.
const Naira = "₦"

var printer = message.NewPrinter(language.English)

// FormatCurrency renders amount with en grouping and up to three fraction
// digits, prefixed by symbol (Naira when empty): 15000 -> ₦15,000.
func FormatCurrency(amount float64, symbol string) string {
	if symbol == "" {
		symbol = Naira
	}
	return symbol + printer.Sprintf("%v", number.Decimal(amount, number.MaxFractionDigits(3)))
}

// FormatDate renders a YYYY-MM-DD or RFC3339 date as "Jan 14, 2025".
// Unparseable input is returned unchanged.
func FormatDate(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateTime renders a date as "Jan 14, 2025, 03:04 PM".
func FormatDateTime(s string) string {
	t, ok := parseDate(s)
	if !ok {
		return s
	}
	return t.Format("Jan 2, 2006, 03:04 PM")
}

func parseDate(s string) (time.Time, bool) {
	for _, l := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// TruncateText cuts text to max runes and appends "..." when it was longer.
func TruncateText(text string, max int) string {
	r := []rune(text)
	if len(r) <= max {
		return text
	}
	return string(r[:max]) + "..."
}

var phoneDigits = regexp.MustCompile(`(\d{3})(\d{3})(\d{4})`)

// FormatPhoneNumber rewrites the first ten-digit run in Nigerian
// international form: 8031234567 -> +234 803 123 4567.
func FormatPhoneNumber(phone string) string {
	loc := phoneDigits.FindStringSubmatchIndex(phone)
	if loc == nil {
		return phone
	}
	out := phoneDigits.ExpandString(nil, "+234 $1 $2 $3", phone, loc)
	return phone[:loc[0]] + string(out) + phone[loc[1]:]
}
