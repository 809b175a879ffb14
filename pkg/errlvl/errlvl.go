package errlvl

import (
	"errors"
	"fmt"
)

type Lvl uint8

const (
	DEBUG Lvl = iota + 1
	INFO
	WARN
	ERROR
	FATAL
)

// String returns the name of the level as it is printed in wrapped errors.
func (l Lvl) String() string {
	switch l {
	case DEBUG:
		return "DEBUG"
	case INFO:
		return "INFO"
	case WARN:
		return "WARN"
	case ERROR:
		return "ERROR"
	case FATAL:
		return "FATAL"
	default:
		return "UNKNOWN"
	}
}

// ErrorLevel is a type that represents the severity of an error in the application.
//
// These are the global error levels used by every package of the scraper to tag its errors.
// The CLI uses them to pick the log level and the Sentry level of a failed command.
type ErrorLevel error

var (
	ErrDebug ErrorLevel = errors.New("[DEBUG]") // ErrDebug marks errors that are only interesting while debugging.
	ErrInfo  ErrorLevel = errors.New("[INFO]")  // ErrInfo marks expected failures (bad input, empty results).
	ErrWarn  ErrorLevel = errors.New("[WARN]")  // ErrWarn marks transient failures the caller may retry.
	ErrError ErrorLevel = errors.New("[ERROR]") // ErrError marks failures that need attention.
	ErrFatal ErrorLevel = errors.New("[FATAL]") // ErrFatal marks failures the process cannot recover from.
)

// Leveler is implemented by typed errors that decide their own level.
type Leveler interface {
	Level() Lvl
}

// Wrap wraps the given error with the given level.
// An error that already carries a level is returned unchanged.
func Wrap(err error, level Lvl) error {
	if hasLevel(err) {
		return err
	}

	return fmt.Errorf("%w %w", sentinel(level), err)
}

// From returns the level carried by the error. Errors without a level are treated as ERROR.
func From(err error) Lvl {
	switch {
	case err == nil:
		return DEBUG
	case errors.Is(err, ErrFatal):
		return FATAL
	case errors.Is(err, ErrError):
		return ERROR
	case errors.Is(err, ErrWarn):
		return WARN
	case errors.Is(err, ErrInfo):
		return INFO
	case errors.Is(err, ErrDebug):
		return DEBUG
	}

	var l Leveler
	if errors.As(err, &l) {
		return l.Level()
	}
	return ERROR
}

func sentinel(level Lvl) ErrorLevel {
	switch level {
	case DEBUG:
		return ErrDebug
	case INFO:
		return ErrInfo
	case WARN:
		return ErrWarn
	case FATAL:
		return ErrFatal
	default:
		return ErrError
	}
}

// hasLevel checks if the given error has a level set already.
func hasLevel(err error) bool {
	var l Leveler
	return errors.Is(err, ErrDebug) || errors.Is(err, ErrInfo) || errors.Is(err, ErrWarn) || errors.Is(err, ErrError) || errors.Is(err, ErrFatal) ||
		errors.As(err, &l)
}
