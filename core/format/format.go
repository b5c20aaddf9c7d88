package format

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Formatter turns a description template and its parameters into display text.
type Formatter interface {
	Format(template string, params []float64) string
}

var (
	placeholder = regexp.MustCompile(`#(\d+)\[(i|f(\d+))\](%?)`)
	richText    = regexp.MustCompile(`</?[a-zA-Z]+(=[^>]*)?>`)
)

// Plain renders templates as plain text.
type Plain struct{}

// Format implements Formatter. Placeholders whose index is out of range are left as is.
func (Plain) Format(template string, params []float64) string {
	out := placeholder.ReplaceAllStringFunc(template, func(m string) string {
		sub := placeholder.FindStringSubmatch(m)
		n, err := strconv.Atoi(sub[1])
		if err != nil || n < 1 || n > len(params) {
			return m
		}

		v := params[n-1]
		percent := sub[4] == "%"
		if percent {
			v *= 100
		}

		var s string
		if sub[2] == "i" {
			s = strconv.FormatInt(int64(math.Round(v)), 10)
		} else {
			digits, _ := strconv.Atoi(sub[3])
			s = strconv.FormatFloat(v, 'f', digits, 64)
		}
		if percent {
			s += "%"
		}
		return s
	})

	out = richText.ReplaceAllString(out, "")
	return strings.ReplaceAll(out, `\n`, "\n")
}
