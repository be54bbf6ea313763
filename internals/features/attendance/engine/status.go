package engine

import "fmt"

// Status is the closed attendance status enumeration. New statuses must be
// added here and handled at every switch site (ChecksIn, UI color mapping).
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusExcused Status = "excused"
)

// AllStatuses in display order.
var AllStatuses = []Status{StatusPresent, StatusAbsent, StatusLate, StatusExcused}

func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusPresent, StatusAbsent, StatusLate, StatusExcused:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid attendance status %q (present/absent/late/excused)", s)
}

func (s Status) Valid() bool {
	_, err := ParseStatus(string(s))
	return err == nil
}

// ChecksIn reports whether the status carries a check-in timestamp when
// persisted. The store stamps check_in_time for these.
func (s Status) ChecksIn() bool {
	switch s {
	case StatusPresent, StatusLate:
		return true
	case StatusAbsent, StatusExcused:
		return false
	}
	return false
}

func (s Status) String() string { return string(s) }
