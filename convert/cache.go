package convert

import (
	"log/slog"
	"strings"

	"github.com/UNO-SOFT/tablesheet/css"
	"github.com/UNO-SOFT/tablesheet/style"
)

// StyleCache interns the formats of one sheet by the canonical key of their inline style.
//
// At most max formats are interned; after that, new styles resolve to the default format.
type StyleCache struct {
	chain   css.Chain
	def     *style.Format
	formats map[string]*style.Format
	logger  *slog.Logger
	max     int
	dropped int
}

// NewStyleCache returns an empty cache. def is returned for blank styles and
// is not counted against max.
func NewStyleCache(chain css.Chain, def *style.Format, max int, logger *slog.Logger) *StyleCache {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &StyleCache{chain: chain, def: def, max: max, logger: logger,
		formats: make(map[string]*style.Format)}
}

// Resolve returns the format for the inline style text, and its canonical properties.
// The properties are nil when the default format is returned.
func (sc *StyleCache) Resolve(text string) (*style.Format, css.Properties) {
	if strings.TrimSpace(text) == "" {
		return sc.def, nil
	}
	props := sc.chain.Canonical(css.Parse(text))
	if len(props) == 0 {
		return sc.def, nil
	}
	key := css.Key(props)
	if f, ok := sc.formats[key]; ok {
		return f, props
	}
	if len(sc.formats) >= sc.max {
		if sc.dropped == 0 {
			sc.logger.Info("too many cell styles, using the default style", "max", sc.max)
		}
		sc.dropped++
		sc.logger.Debug("style dropped", "key", key)
		return sc.def, nil
	}
	sc.logger.Debug("new cell style", "key", key)
	f := new(style.Format)
	*f = *sc.def
	sc.chain.Apply(f, props)
	sc.formats[key] = f
	return f, props
}

// Len returns the number of interned formats.
func (sc *StyleCache) Len() int { return len(sc.formats) }

// Dropped returns how many resolutions fell back to the default format because the cache was full.
func (sc *StyleCache) Dropped() int { return sc.dropped }
