package wizard

import "fmt"

// ConfigError reports bad or inconsistent inputs. It is always detected
// before any data fetch and is never retried.
type ConfigError string

func (e ConfigError) Error() string { return string(e) }

// configf builds a ConfigError with a formatted message.
func configf(format string, args ...any) ConfigError {
	return ConfigError(fmt.Sprintf(format, args...))
}

// DataError reports that the price provider returned no data or failed.
// It propagates to the caller without local recovery.
type DataError struct {
	Ticker string
	Err    error
}

func (e *DataError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("no data found for ticker %s", e.Ticker)
	}
	return fmt.Sprintf("fetching %s: %v", e.Ticker, e.Err)
}

func (e *DataError) Unwrap() error { return e.Err }

// SimulationError wraps any failure during a growth simulation with the
// canonicalized ticker it was simulating.
type SimulationError struct {
	Ticker string
	Err    error
}

func (e *SimulationError) Error() string {
	return fmt.Sprintf("error simulating %s: %v", e.Ticker, e.Err)
}

func (e *SimulationError) Unwrap() error { return e.Err }
