// AngelaMos | 2026
// filter.go

package catalog

// Filter selects rows by their archived flag. Public endpoints always use
// FilterActive; admin listings accept any of the three.
type Filter string

const (
	FilterActive   Filter = "active"
	FilterArchived Filter = "archived"
	FilterAll      Filter = "all"
)

// ParseFilter maps a query parameter to a Filter, defaulting to all for
// empty or unknown values.
func ParseFilter(s string) Filter {
	switch Filter(s) {
	case FilterActive:
		return FilterActive
	case FilterArchived:
		return FilterArchived
	default:
		return FilterAll
	}
}
