package assert

import "fmt"

// Violation is the panic value raised when an internal invariant does not hold.
// Violations are programming errors and are never recovered inside the core.
type Violation struct {
	Message string
}

func (v *Violation) Error() string {
	return "invariant violated: " + v.Message
}

// IsTrue panics with a Violation built from message and args when ok is false.
func IsTrue(ok bool, message string, args ...interface{}) {
	if !ok {
		panic(&Violation{Message: fmt.Sprintf(message, args...)})
	}
}
