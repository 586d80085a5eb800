package domain

// Goal is a savings target owned by a single user.
type Goal struct {
	ID            int64
	UserID        int64
	Name          string
	TargetAmount  float64
	CurrentAmount float64
}

// Progress returns the saved percentage of the target, capped at 100.
// A non-positive target yields 0 rather than dividing by zero.
func (g Goal) Progress() float64 {
	if g.TargetAmount <= 0 {
		return 0
	}
	p := g.CurrentAmount / g.TargetAmount * 100
	if p > 100 {
		return 100
	}
	return p
}
