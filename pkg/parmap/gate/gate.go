package gate

// Mode is the execution path of a single call.
type Mode int

const (
	// Sequential maps the input on the calling goroutine.
	Sequential Mode = iota
	// Parallel splits the input into chunks, one goroutine each.
	Parallel
)

func (m Mode) String() string {
	switch m {
	case Sequential:
		return "sequential"
	case Parallel:
		return "parallel"
	default:
		return "unknown"
	}
}

// Decide returns Sequential when n <= threshold and Parallel otherwise.
// Empty input is always Sequential.
func Decide(n, threshold int) Mode {
	if n == 0 || n <= threshold {
		return Sequential
	}
	return Parallel
}
