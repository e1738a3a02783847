package config

import (
	"fmt"
	"os"
)

func Template() string {
	return usefulctlTemplate
}

func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	return os.WriteFile(path, []byte(usefulctlTemplate), 0o600)
}

const usefulctlTemplate = `program = "usefulctl"

[dump]
mode = "byte"
label = "mem"

[log]
level = "info"

[metrics]
textfile = ""
`
