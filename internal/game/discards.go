package game

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// ValidateDiscards checks hand indexes for an exchange: each in range, no
// repeats, and no more than maxDiscards of them.
func ValidateDiscards(indexes []int, handSize, maxDiscards int) error {
	if len(indexes) > maxDiscards {
		return fmt.Errorf("%w: %d cards requested, at most %d allowed", ErrInvalidDiscard, len(indexes), maxDiscards)
	}
	seen := make(map[int]bool, len(indexes))
	for _, i := range indexes {
		if i < 0 || i >= handSize {
			return fmt.Errorf("%w: index %d outside 0-%d", ErrInvalidDiscard, i, handSize-1)
		}
		if seen[i] {
			return fmt.Errorf("%w: index %d given twice", ErrInvalidDiscard, i)
		}
		seen[i] = true
	}
	return nil
}

// ParseDiscards reads indexes separated by commas and/or spaces ("0,2 4").
// A blank line means no exchange. The result is sorted and validated.
func ParseDiscards(s string, handSize, maxDiscards int) ([]int, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	indexes := make([]int, 0, len(fields))
	for _, f := range fields {
		i, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a card index", ErrInvalidDiscard, f)
		}
		indexes = append(indexes, i)
	}
	if err := ValidateDiscards(indexes, handSize, maxDiscards); err != nil {
		return nil, err
	}
	slices.Sort(indexes)
	return indexes, nil
}
