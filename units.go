package mason

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/alecthomas/units"
)

var durationUnits = map[string]time.Duration{}

var sizeUnits = map[string]units.Base2Bytes{}

func init() {
	for d, names := range map[time.Duration][]string{
		time.Nanosecond:  {"ns", "nano", "nanos", "nanosecond", "nanoseconds"},
		time.Microsecond: {"us", "micro", "micros", "microsecond", "microseconds"},
		time.Millisecond: {"", "ms", "milli", "millis", "millisecond", "milliseconds"},
		time.Second:      {"s", "second", "seconds"},
		time.Minute:      {"m", "minute", "minutes"},
		time.Hour:        {"h", "hour", "hours"},
		24 * time.Hour:   {"d", "day", "days"},
	} {
		for _, name := range names {
			durationUnits[name] = d
		}
	}

	for _, name := range []string{"", "B", "b", "byte", "bytes"} {
		sizeUnits[name] = 1
	}
	base2 := []units.Base2Bytes{units.KiB, units.MiB, units.GiB, units.TiB, units.PiB, units.EiB}
	metric := []units.MetricBytes{units.KB, units.MB, units.GB, units.TB, units.PB, units.EB}
	for i, prefix := range []string{"kilo", "mega", "giga", "tera", "peta", "exa"} {
		letter := strings.ToUpper(prefix[:1])
		// IEC names: kibi, mebi, gibi, ...
		binary := prefix[:2] + "bi"
		for _, name := range []string{letter, strings.ToLower(letter), letter + "i", letter + "iB", binary + "byte", binary + "bytes"} {
			sizeUnits[name] = base2[i]
		}
		for _, name := range []string{letter + "B", prefix + "byte", prefix + "bytes"} {
			sizeUnits[name] = units.Base2Bytes(metric[i])
		}
	}
	sizeUnits["kB"] = units.Base2Bytes(units.KB)
}

// ParseDuration parses a duration literal such as "10s", "1.5 hours" or "250".
//
// A number without a unit is in milliseconds.
func ParseDuration(s string) (time.Duration, error) {
	number, unit := splitUnit(s)
	scale, ok := durationUnits[unit]
	if !ok {
		return 0, fmt.Errorf("unknown duration unit %q in %q", unit, s)
	}
	if n, err := strconv.ParseInt(number, 10, 64); err == nil {
		if n != 0 && (n*int64(scale))/n != int64(scale) {
			return 0, fmt.Errorf("duration %q out of range", s)
		}
		return time.Duration(n) * scale, nil
	}
	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q", s)
	}
	d := f * float64(scale)
	if math.IsNaN(d) || math.Abs(d) > math.MaxInt64 {
		return 0, fmt.Errorf("duration %q out of range", s)
	}
	return time.Duration(d), nil
}

// ParseSize parses a size literal such as "512K", "10 MB" or "1.5 gibibytes".
//
// Single letter units and the "KiB" forms are powers of two, "kB" and the
// long metric forms are powers of ten. A number without a unit is in bytes.
func ParseSize(s string) (units.Base2Bytes, error) {
	number, unit := splitUnit(s)
	scale, ok := sizeUnits[unit]
	if !ok {
		return compoundSize(s, fmt.Errorf("unknown size unit %q in %q", unit, s))
	}
	if n, err := strconv.ParseInt(number, 10, 64); err == nil {
		if n < 0 {
			return 0, fmt.Errorf("negative size %q", s)
		}
		if n != 0 && (n*int64(scale))/n != int64(scale) {
			return 0, fmt.Errorf("size %q out of range", s)
		}
		return units.Base2Bytes(n) * scale, nil
	}
	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return compoundSize(s, fmt.Errorf("invalid size %q", s))
	}
	size := f * float64(scale)
	if math.IsNaN(size) || size < 0 || size > math.MaxInt64 {
		return 0, fmt.Errorf("size %q out of range", s)
	}
	return units.Base2Bytes(size), nil
}

// compoundSize parses literals such as "1GiB512MiB", returning fallback if
// s is not one.
func compoundSize(s string, fallback error) (units.Base2Bytes, error) {
	size, err := units.ParseBase2Bytes(strings.TrimSpace(s))
	if err != nil {
		return 0, fallback
	}
	return size, nil
}

// splitUnit separates a literal into its number and its trailing unit.
func splitUnit(s string) (number, unit string) {
	s = strings.TrimSpace(s)
	i := strings.LastIndexFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	return strings.TrimSpace(s[:i+1]), s[i+1:]
}
