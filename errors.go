package involute

import "fmt"

// InvalidParameterError is returned when a macro parameter or generator
// argument is out of its valid range.
type InvalidParameterError struct {
	Param  string  // parameter name, i.e. "module"
	Value  float64 // offending value
	Reason string
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter %s=%g: %s", e.Param, e.Value, e.Reason)
}

// DomainError is returned when an inverse trigonometric function is
// evaluated outside [-1, 1], typically for a radius inside the base circle.
type DomainError struct {
	Op  string  // function name, "acos" or "asin"
	Arg float64 // argument passed to Op
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s argument %g outside [-1,1]", e.Op, e.Arg)
}

// AssemblyError is returned when parameters describe a gear that cannot be
// built, for example an addendum circle inside the base circle.
type AssemblyError struct {
	Reason string
}

func (e *AssemblyError) Error() string {
	return "gear assembly: " + e.Reason
}

// IncompatibleGearsError is returned when two gears that should mesh do not
// share module or pressure angle.
type IncompatibleGearsError struct {
	Field string
	A, B  float64
}

func (e *IncompatibleGearsError) Error() string {
	return fmt.Sprintf("gears do not mesh: %s differs (%g != %g)", e.Field, e.A, e.B)
}
