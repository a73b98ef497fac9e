package passmith

import (
	"fmt"

	"github.com/avezina/passmith/internal/policy"
)

// Reason classifies why a policy could not be satisfied.
type Reason string

const (
	NoClasses      Reason = Reason(policy.KindNoClasses)
	EmptyPool      Reason = Reason(policy.KindEmptyPool)
	LengthTooShort Reason = Reason(policy.KindLengthTooShort)
	InvalidCount   Reason = Reason(policy.KindInvalidCount)
	InvalidMin     Reason = Reason(policy.KindInvalidMin)
)

// PolicyError is returned when a requested policy cannot produce passwords.
type PolicyError struct {
	Reason  Reason
	Message string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("passmith rejected policy (%s): %s", e.Reason, e.Message)
}

// toPolicyError maps an internal validation error to the SDK error type.
// Other errors pass through unchanged.
func toPolicyError(err error) error {
	if verr, ok := err.(*policy.ValidationError); ok {
		return &PolicyError{
			Reason:  Reason(verr.Kind),
			Message: verr.Error(),
		}
	}
	return err
}
