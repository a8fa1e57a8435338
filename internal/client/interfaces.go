package client

// Client is a runnable command-line front end. Run parses os.Args, executes
// the selected command and returns its error.
type Client interface {
	Run() error
}

var _ Client = (*App)(nil)
