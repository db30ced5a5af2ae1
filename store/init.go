package store

import (
	"fmt"
	"github.com/dchest/uniuri"
	"github.com/sirupsen/logrus"
	"os"
	"path/filepath"
)

var logger = logrus.WithField("component", "store")

var dir string

// initialize the record stores in the given directory, creating it if required
func Init(path string) error {
	if err := os.MkdirAll(path, dirPerms); err != nil {
		logger.WithError(err).Errorf("failed to initialize record stores in %s", path)
		return err
	}
	dir = path
	logger.Infof("record stores initialized in %s", path)
	return nil
}

// initializes record stores for testing and returns a cleanup function
func InitForTest() func() {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("campus_test_store_%s", uniuri.New()))
	if err := Init(path); err != nil {
		panic(err)
	}
	return func() {
		dir = ""
		if err := os.RemoveAll(path); err != nil {
			panic(err)
		}
	}
}
