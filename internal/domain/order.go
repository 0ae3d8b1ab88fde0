package domain

import (
	"fmt"
	"sort"
)

// OrderCriterion selects how files are ordered before numbering
type OrderCriterion int

const (
	OrderUnknown OrderCriterion = iota
	OrderByName                 // lexical on the full file name
	OrderByMTime                // modification time, ascending
	OrderByCTime                // change/creation time, ascending
	OrderByEmbeddedNumber       // first digit run in the stem, -1 when absent
)

func (c OrderCriterion) String() string {
	switch c {
	case OrderByName:
		return "by-name"
	case OrderByMTime:
		return "by-mtime"
	case OrderByCTime:
		return "by-ctime"
	case OrderByEmbeddedNumber:
		return "by-embedded-number"
	default:
		return "unknown"
	}
}

// ParseOrderCriterion maps a CLI token to its criterion
func ParseOrderCriterion(s string) (OrderCriterion, error) {
	switch s {
	case "by-name":
		return OrderByName, nil
	case "by-mtime":
		return OrderByMTime, nil
	case "by-ctime":
		return OrderByCTime, nil
	case "by-embedded-number":
		return OrderByEmbeddedNumber, nil
	default:
		return OrderUnknown, fmt.Errorf("%w: %s", ErrUnsupportedOrder, s)
	}
}

// SortEntries returns a new slice sorted by the given criterion. The sort is
// stable: entries with equal keys keep their enumeration order.
func SortEntries(entries []FileEntry, criterion OrderCriterion) ([]FileEntry, error) {
	sorted := make([]FileEntry, len(entries))
	copy(sorted, entries)

	switch criterion {
	case OrderByName:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Name < sorted[j].Name
		})
	case OrderByMTime:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ModTime.Before(sorted[j].ModTime)
		})
	case OrderByCTime:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].ChangeTime.Before(sorted[j].ChangeTime)
		})
	case OrderByEmbeddedNumber:
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].EmbeddedNumber() < sorted[j].EmbeddedNumber()
		})
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedOrder, criterion)
	}

	return sorted, nil
}
