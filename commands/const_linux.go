package commands

const (
	_etc = "/usr/local/etc/sheetbatch"
	_var = "/usr/local/var/sheetbatch"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
