package pattern

import "strconv"

// textNumbers maps spelled-out counts to digit form. Treatment-count
// phrases are normalized at match time ("ten physiotherapy sessions"
// becomes "10 physiotherapy sessions").
var textNumbers = map[string]string{
	"one":       "1",
	"two":       "2",
	"three":     "3",
	"four":      "4",
	"five":      "5",
	"six":       "6",
	"seven":     "7",
	"eight":     "8",
	"nine":      "9",
	"ten":       "10",
	"eleven":    "11",
	"twelve":    "12",
	"thirteen":  "13",
	"fourteen":  "14",
	"fifteen":   "15",
	"sixteen":   "16",
	"seventeen": "17",
	"eighteen":  "18",
	"nineteen":  "19",
	"twenty":    "20",
	"thirty":    "30",
	"forty":     "40",
	"fifty":     "50",
	"sixty":     "60",
	"seventy":   "70",
	"eighty":    "80",
	"ninety":    "90",
}

// NormalizeCount returns the digit form of a count token, accepting both
// digit and spelled-out input. The second value reports whether the token
// is a count at all.
func NormalizeCount(text string) (string, bool) {
	if digits, ok := textNumbers[text]; ok {
		return digits, true
	}
	if _, err := strconv.Atoi(text); err == nil {
		return text, true
	}
	return "", false
}
