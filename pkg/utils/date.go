package utils

import "time"

// ParseTime aceita RFC3339 ou apenas a data (2006-01-02, em UTC)
func ParseTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return &t, nil
	}

	t, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil, err
	}

	return &t, nil
}
