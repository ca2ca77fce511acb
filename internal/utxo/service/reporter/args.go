package reporter

import (
	"strings"

	"github.com/jessevdk/go-flags"
)

// Args bounds a reporter run. Nil bounds fall back to the checkpoint and to no end.
type Args struct {
	Start *uint64
	End   *uint64
}

type boundOptions struct {
	Start uint64 `long:"start"`
	End   uint64 `long:"end"`
}

// ParseArgs reads whitespace separated `start=N` and `end=N` tokens. Unknown tokens are
// ignored. A start or end token with an invalid number discards the whole string, leaving
// both bounds unset.
func ParseArgs(raw string) Args {
	var args Args
	for _, token := range strings.Fields(raw) {
		key, value, ok := strings.Cut(token, "=")
		if !ok || (key != "start" && key != "end") {
			continue
		}

		var opts boundOptions
		if _, err := flags.NewParser(&opts, flags.None).ParseArgs([]string{"--" + key + "=" + value}); err != nil {
			return Args{}
		}
		switch key {
		case "start":
			args.Start = &opts.Start
		case "end":
			args.End = &opts.End
		}
	}
	return args
}

// String renders the bounds the way ParseArgs reads them.
func (a Args) String() string {
	var parts []string
	if a.Start != nil {
		parts = append(parts, "start="+formatHeight(*a.Start))
	}
	if a.End != nil {
		parts = append(parts, "end="+formatHeight(*a.End))
	}
	return strings.Join(parts, " ")
}
