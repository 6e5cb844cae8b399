// Package model defines shared data structures.
package model

// Config defines the runtime settings of the form screens.
type Config struct {
	Locale  string
	Accent  string
	LogFile string
	Debug   bool
}
