package calculation

import (
	"github.com/hdbplan/hdbplan/internal/domain"
)

// Calculator evaluates HDB loan eligibility and purchase affordability
// against a policy parameter set. Every method is a pure function of
// its arguments and the policy, so a single Calculator is safe to
// share across goroutines.
type Calculator struct {
	Policy *domain.Policy
}

// NewCalculator creates a new Calculator
func NewCalculator(policy *domain.Policy) *Calculator {
	return &Calculator{Policy: policy}
}
