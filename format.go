package mongy

import (
	"sync"
	"time"

	"github.com/lestrrat-go/strftime"
)

var (
	patterns   = make(map[string]*strftime.Strftime)
	patternsMu sync.RWMutex
)

// formatTime renders t with a strftime pattern. %f prints microseconds.
// Compiled patterns are cached.
func formatTime(pattern string, t time.Time) (string, error) {
	f, err := compilePattern(pattern)
	if err != nil {
		return "", err
	}
	return f.FormatString(t), nil
}

func compilePattern(pattern string) (*strftime.Strftime, error) {
	patternsMu.RLock()
	if f, ok := patterns[pattern]; ok {
		patternsMu.RUnlock()
		return f, nil
	}
	patternsMu.RUnlock()

	patternsMu.Lock()
	defer patternsMu.Unlock()

	if f, ok := patterns[pattern]; ok {
		return f, nil
	}

	f, err := strftime.New(pattern, strftime.WithMicroseconds('f'))
	if err != nil {
		return nil, err
	}
	patterns[pattern] = f
	return f, nil
}
