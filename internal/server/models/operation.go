package models

// Operation is a sensitive action a one-time code can be issued for.
type Operation string

const (
	OpVerify    Operation = "verify"
	OpRead      Operation = "read"
	OpChangePin Operation = "change-pin"
	OpResetPin  Operation = "reset-pin"
	OpRemove    Operation = "remove"
)

// Operations lists all known operations.
var Operations = []Operation{OpVerify, OpRead, OpChangePin, OpResetPin, OpRemove}

// Valid reports whether op is a known operation.
func (op Operation) Valid() bool {
	for _, o := range Operations {
		if o == op {
			return true
		}
	}
	return false
}
