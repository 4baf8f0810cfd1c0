// Command mfdate prints the months between two dates, once built with an
// explicit loop and once with the month iterator.
//
// Usage:
//
//	mfdate [-config mfdate.toml] [-start 2021-08-31] [-end 2022-02-28] [-format "%b %Y"]
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strings"

	"github.com/mazzegi/log"
	"github.com/mazzegi/mfdate/date"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	cfg, err := loadConfig(os.Args[1:])
	exitWhen(err)
	start, end, err := cfg.bounds()
	exitWhen(err)
	log.Debugf("range %s .. %s (format %q)", start.Date(), end.Date(), cfg.Format)

	// explicit loop
	looped := date.Range(start, end)
	out, err := render(looped, cfg.Format)
	exitWhen(err)
	fmt.Println(out)

	// iterator
	iterated := slices.Collect(start.AddMonthsResetDay(0).NextBeforeEq(end).All())
	out, err = render(iterated, cfg.Format)
	exitWhen(err)
	fmt.Println(out)

	if !slices.Equal(looped, iterated) {
		log.Errorf("loop and iterator disagree: %v vs %v", looped, iterated)
	}
	fmt.Println(summary(len(iterated), start, end))
	log.Infof("done")
}

// render lists the months in display form, or with the strftime pattern if one is given.
func render(ms []date.MonthFloor, pattern string) (string, error) {
	sl := make([]string, len(ms))
	for i, m := range ms {
		if pattern == "" {
			sl[i] = m.String()
			continue
		}
		s, err := m.Format(pattern)
		if err != nil {
			return "", err
		}
		sl[i] = s
	}
	return "[" + strings.Join(sl, ", ") + "]", nil
}

func summary(n int, start, end date.MonthFloor) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf("%d months from %s through %s", n, start.YearMonth(), end.YearMonth())
}

func exitWhen(err error) {
	if err == nil {
		return
	}
	_, file, line, _ := runtime.Caller(1)
	file = filepath.Base(file)
	fmt.Fprintf(os.Stderr, "ERROR (EXIT): %v - (%s:%d)\n", err, file, line)
	os.Exit(1)
}
