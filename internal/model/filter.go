package model

// AcquisitionFilter is the three-way ownership view mode.
//
// The zero value behaves like FilterAll. The string forms are used
// both on the CLI (`--filter acquired`) and in saved settings, so they
// must stay stable.
type AcquisitionFilter string

const (
	// FilterAll shows every car regardless of ownership.
	FilterAll AcquisitionFilter = "all"

	// FilterAcquired shows only cars marked acquired.
	FilterAcquired AcquisitionFilter = "acquired"

	// FilterNotAcquired shows only cars not yet acquired.
	FilterNotAcquired AcquisitionFilter = "notAcquired"
)

// ParseAcquisitionFilter maps a user-supplied string to a filter mode.
// Unrecognized input falls back to FilterAll.
func ParseAcquisitionFilter(s string) AcquisitionFilter {
	switch s {
	case string(FilterAcquired), "owned":
		return FilterAcquired
	case string(FilterNotAcquired), "missing":
		return FilterNotAcquired
	default:
		return FilterAll
	}
}

// Matches reports whether a car's acquired flag passes the filter.
func (f AcquisitionFilter) Matches(c *Car) bool {
	switch f {
	case FilterAcquired:
		return c.Acquired
	case FilterNotAcquired:
		return !c.Acquired
	default:
		return true
	}
}
