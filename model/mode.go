package model

type Mode struct {
	Name        string
	Intervals   []Interval
	Description string
}

func (m Mode) DegreeCount() int {
	if len(m.Intervals) == 0 {
		return 0
	}
	return len(m.Intervals) - 1
}
