//go:build !windows

package cmd

import (
	"fmt"
)

func getDefaultConfigFilePath() string {
	return fmt.Sprintf("/etc/campus-registry/%s", defaultConfigFileName)
}

func getDefaultDataDirPath() string {
	return "/var/lib/campus-registry/data"
}
