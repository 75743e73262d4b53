package logging

import (
	"time"
)

// Time executes fn and logs its execution time at debug level.
//
// Example:
//
//	logging.Time("render preview", func() {
//	    err = render.Preview(w, set, opts)
//	})
func Time(name string, fn func()) {
	Get().Time(name, fn)
}

// TimeWithResult executes fn, logs its execution time and returns its result.
//
// Example:
//
//	swatches := logging.TimeWithResult("swatches", func() []render.Swatch {
//	    return render.PreviewSwatches(set)
//	})
func TimeWithResult[T any](name string, fn func() T) T {
	l := Get()
	if !l.IsEnabled() {
		return fn()
	}

	start := time.Now()
	result := fn()
	l.logDuration(name, time.Since(start))
	return result
}

// Time is the Logger-bound form of the package-level Time helper.
// Use this when the logger already carries component attributes.
func (l *Logger) Time(name string, fn func()) {
	if !l.IsEnabled() {
		fn()
		return
	}

	start := time.Now()
	fn()
	l.logDuration(name, time.Since(start))
}

func (l *Logger) logDuration(name string, d time.Duration) {
	l.Debug(name,
		"duration", d.String(),
		"us", d.Microseconds(),
	)
}
