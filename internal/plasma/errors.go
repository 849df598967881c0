package plasma

import "fmt"

// DomainError reports an input outside the mathematical domain of a model
// (non-positive radius, density or length, negative radicand). It is raised
// at the point of violation and never coerced to zero or clipped.
type DomainError struct {
	Quantity string
	Value    float64
	Reason   string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("plasma: %s = %g %s", e.Quantity, e.Value, e.Reason)
}

func CheckPositive(quantity string, value float64) error {
	if !(value > 0) {
		return &DomainError{Quantity: quantity, Value: value, Reason: "must be > 0"}
	}
	return nil
}
