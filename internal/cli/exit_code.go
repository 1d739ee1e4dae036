package cli

const (
	ExitCodeSuccess ExitCode = iota
	ExitCodeGeneralError
)

// ExitCode is the process exit status, Maven's own codes included.
type ExitCode byte

// ExitCoder is an error telling the app which code to exit with.
type ExitCoder interface {
	error
	ExitCode() int
	Unwrap() error
}
