package commands

const (
	_etc = "/usr/local/etc/com.github.sheetbatch"
	_var = "/usr/local/var/com.github.sheetbatch"

	DEFAULT_WORKDIR     = _var
	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
