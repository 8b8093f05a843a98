package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// paletteList is a flag.Value implementation that accumulates repeated -palette entries.
type paletteList []string

// Set appends the palette path to the list.
func (p *paletteList) Set(value string) error {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return errors.New("palette path must not be empty")
	}
	*p = append(*p, trimmed)
	return nil
}

// String returns the string representation of the flag value.
func (p *paletteList) String() string {
	return strings.Join(*p, ", ")
}

// Values returns the list of palette paths.
func (p *paletteList) Values() []string {
	return append([]string(nil), *p...)
}

// trackedIntFlag is a flag.Value implementation that tracks whether a flag was set.
type trackedIntFlag struct {
	value int
	set   bool
}

// Set converts the string value to an integer and stores it.
func (f *trackedIntFlag) Set(s string) error {
	v, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	f.value = v
	f.set = true
	return nil
}

// String returns the string representation of the flag value.
func (f *trackedIntFlag) String() string {
	return strconv.Itoa(f.value)
}

// Value returns the integer value of the flag.
func (f *trackedIntFlag) Value() int {
	return f.value
}

// WasSet returns true if the flag was set.
func (f *trackedIntFlag) WasSet() bool {
	return f.set
}

// newTrackedIntFlag creates a new trackedIntFlag with the given default value.
func newTrackedIntFlag(defaultValue int) trackedIntFlag {
	return trackedIntFlag{value: defaultValue}
}

// verbosityCounter is a flag.Value implementation that counts repeated -v flags.
// Explicit levels in the -v=N form are added to the count.
type verbosityCounter struct {
	count int
}

// newVerbosityCounter creates a verbosityCounter starting at zero.
func newVerbosityCounter() *verbosityCounter {
	return &verbosityCounter{}
}

// Set increments the counter by one for a bare -v, or by N for -v=N.
func (v *verbosityCounter) Set(s string) error {
	if s == "true" {
		v.count++
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("invalid verbosity level %q", s)
	}
	if n < 0 {
		return fmt.Errorf("verbosity level must not be negative, got %d", n)
	}
	v.count += n
	return nil
}

// String returns the string representation of the flag value.
func (v *verbosityCounter) String() string {
	if v == nil {
		return "0"
	}
	return strconv.Itoa(v.count)
}

// IsBoolFlag lets -v be passed without a value.
func (*verbosityCounter) IsBoolFlag() bool {
	return true
}

// Value returns the verbosity level.
func (v *verbosityCounter) Value() int {
	return v.count
}
