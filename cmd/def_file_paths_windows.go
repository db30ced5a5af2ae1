//go:build windows

package cmd

import (
	"fmt"
)

func getDefaultConfigFilePath() string {
	return fmt.Sprintf("C:\\ProgramData\\campus-registry\\%s", defaultConfigFileName)
}

func getDefaultDataDirPath() string {
	return "C:\\ProgramData\\campus-registry\\data"
}
