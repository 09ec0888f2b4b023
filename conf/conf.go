package conf

import (
	"fmt"
	"sync"

	"github.com/perlin-network/recall"
)

type config struct {
	// Where the history is persisted. Empty disables persistence.
	historyFile string

	// Maximum number of entries retained in memory.
	historySize int

	// Suppresses all recording when set.
	disableHistory bool

	// Persistence strategy: append newly recorded entries rather than
	// rewriting the whole file.
	historyAppend bool

	// Combined with historyAppend, flush every accepted entry as it is
	// recorded.
	historyIncremental bool

	// Filter options.
	ignoreSpace   bool
	reduceBlanks  bool
	ignoreDups    bool
	historyIgnore string
}

var (
	l sync.RWMutex

	defaultConf = defaultConfig()
	c           = defaultConf
)

func defaultConfig() config {
	return config{
		historySize: recall.DefaultHistorySize,
	}
}

type Option func(*config)

func WithHistoryFile(path string) Option {
	return func(c *config) {
		c.historyFile = path
	}
}

func WithHistorySize(n int) Option {
	return func(c *config) {
		c.historySize = n
	}
}

func WithDisableHistory(v bool) Option {
	return func(c *config) {
		c.disableHistory = v
	}
}

func WithHistoryAppend(v bool) Option {
	return func(c *config) {
		c.historyAppend = v
	}
}

func WithHistoryIncremental(v bool) Option {
	return func(c *config) {
		c.historyIncremental = v
	}
}

func WithIgnoreSpace(v bool) Option {
	return func(c *config) {
		c.ignoreSpace = v
	}
}

func WithReduceBlanks(v bool) Option {
	return func(c *config) {
		c.reduceBlanks = v
	}
}

func WithIgnoreDups(v bool) Option {
	return func(c *config) {
		c.ignoreDups = v
	}
}

func WithHistoryIgnore(patterns string) Option {
	return func(c *config) {
		c.historyIgnore = patterns
	}
}

func GetHistoryFile() string {
	l.RLock()
	t := c.historyFile
	l.RUnlock()

	return t
}

func GetHistorySize() int {
	l.RLock()
	t := c.historySize
	l.RUnlock()

	return t
}

func GetDisableHistory() bool {
	l.RLock()
	t := c.disableHistory
	l.RUnlock()

	return t
}

func GetHistoryAppend() bool {
	l.RLock()
	t := c.historyAppend
	l.RUnlock()

	return t
}

func GetHistoryIncremental() bool {
	l.RLock()
	t := c.historyIncremental
	l.RUnlock()

	return t
}

func GetIgnoreSpace() bool {
	l.RLock()
	t := c.ignoreSpace
	l.RUnlock()

	return t
}

func GetReduceBlanks() bool {
	l.RLock()
	t := c.reduceBlanks
	l.RUnlock()

	return t
}

func GetIgnoreDups() bool {
	l.RLock()
	t := c.ignoreDups
	l.RUnlock()

	return t
}

func GetHistoryIgnore() string {
	l.RLock()
	t := c.historyIgnore
	l.RUnlock()

	return t
}

func Update(options ...Option) {
	l.Lock()

	for _, option := range options {
		option(&c)
	}

	l.Unlock()
}

func Stringify() string {
	l.RLock()
	s := fmt.Sprintf("%+v", c)
	l.RUnlock()

	return s
}

func Reset() {
	l.Lock()
	c = defaultConf
	l.Unlock()
}

// Provider exposes this package's process-wide configuration as the
// provider interface a History is constructed with.
type Provider struct{}

var _ recall.Config = (*Provider)(nil)

func (Provider) GetHistoryFile() string { return GetHistoryFile() }
func (Provider) GetHistorySize() int { return GetHistorySize() }
func (Provider) GetDisableHistory() bool { return GetDisableHistory() }
func (Provider) GetHistoryAppend() bool { return GetHistoryAppend() }
func (Provider) GetHistoryIncremental() bool { return GetHistoryIncremental() }
func (Provider) GetIgnoreSpace() bool { return GetIgnoreSpace() }
func (Provider) GetReduceBlanks() bool { return GetReduceBlanks() }
func (Provider) GetIgnoreDups() bool { return GetIgnoreDups() }
func (Provider) GetHistoryIgnore() string { return GetHistoryIgnore() }
