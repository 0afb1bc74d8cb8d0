package shellutils

type ShellCommand struct {
	Options  interface{}
	Command  string
	Desc     string
	Callback interface{}
}

var CommandTable []ShellCommand = make([]ShellCommand, 0)

func R(options interface{}, command string, desc string, callback interface{}) {
	CommandTable = append(CommandTable, ShellCommand{Options: options, Command: command, Desc: desc, Callback: callback})
}
