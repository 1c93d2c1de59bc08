package content

import (
	"strconv"

	"github.com/nao1215/neuroscan/internal/anim"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatNumber abbreviates large values: millions get one decimal and "M",
// thousands get one decimal and "K", anything smaller is printed as is.
//
//	FormatNumber(2500000) // "2.5M"
//	FormatNumber(1500)    // "1.5K"
//	FormatNumber(45)      // "45"
func FormatNumber(num float64) string {
	switch {
	case num >= 1_000_000:
		return strconv.FormatFloat(num/1_000_000, 'f', 1, 64) + "M"
	case num >= 1_000:
		return strconv.FormatFloat(num/1_000, 'f', 1, 64) + "K"
	default:
		return strconv.FormatFloat(num, 'f', -1, 64)
	}
}

// Display renders a counter value the way the statistics section shows it.
// Targets above 1000 are abbreviated with FormatNumber.
func (s StatEntry) Display(count int64) string {
	text := strconv.FormatInt(count, 10)
	if s.Value > 1000 {
		text = FormatNumber(float64(count))
	}
	return s.Prefix + text + s.Suffix
}

// Final renders the value a counter settles on. Negative and NaN targets
// settle on 0 and huge ones on math.MaxInt64.
func (s StatEntry) Final() string {
	return s.Display(anim.Floor(s.Value))
}

// FormatVolume prints a volume in cubic centimetres with thousands separators ("1,450cc").
func FormatVolume(cc int) string {
	return message.NewPrinter(language.English).Sprintf("%dcc", cc)
}
