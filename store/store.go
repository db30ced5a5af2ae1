// access to the newline delimited JSON record stores
package store

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
)

func storeFilePath(collection string) string {
	return filepath.Join(dir, collection + fileExt)
}

// Records returns all records persisted for the given collection, in the order
// they were written. A missing or empty store yields no records. Malformed
// content is reported and treated as no data, so a corrupt store file never
// blocks the program.
func Records[T any](collection string) ([]T, error) {
	if dir == "" {
		return nil, &ErrNotInitialized{}
	}
	storeFile, err := os.Open(storeFilePath(collection))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		logger.WithError(err).Errorf("error opening \"%s\" store", collection)
		return nil, &ErrStoreAccess{collection, err}
	}
	defer func() {
		if err := storeFile.Close(); err != nil {
			logger.WithError(err).Errorf("error closing \"%s\" store after reading", collection)
		}
	}()
	var records []T
	scanner := bufio.NewScanner(storeFile)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxRecordLen)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		var record T
		if err := json.Unmarshal([]byte(line), &record); err != nil {
			logger.WithError(err).Errorf("malformed record in \"%s\" store, treating the store as empty", collection)
			return nil, nil
		}
		records = append(records, record)
	}
	if err := scanner.Err(); err != nil {
		logger.WithError(err).Errorf("error reading \"%s\" store, treating the store as empty", collection)
		return nil, nil
	}
	return records, nil
}

// Overwrite replaces the entire content of the given collection with the given
// records, one self contained JSON record per line
func Overwrite[T any](collection string, records []T) error {
	if dir == "" {
		return &ErrNotInitialized{}
	}
	storeFile, err := os.OpenFile(storeFilePath(collection), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePerms)
	if err != nil {
		logger.WithError(err).Errorf("error opening \"%s\" store for writing", collection)
		return &ErrStoreAccess{collection, err}
	}
	storeWriter := bufio.NewWriter(storeFile)
	for _, record := range records {
		recordBytes, err := json.Marshal(record)
		if err != nil {
			logger.WithError(err).Errorf("error serializing record for \"%s\" store", collection)
			closeStoreFile(storeFile, collection)
			return &ErrStoreAccess{collection, err}
		}
		if _, err := storeWriter.Write(append(recordBytes, '\n')); err != nil {
			logger.WithError(err).Errorf("error writing to \"%s\" store", collection)
			closeStoreFile(storeFile, collection)
			return &ErrStoreAccess{collection, err}
		}
	}
	if err := storeWriter.Flush(); err != nil {
		logger.WithError(err).Errorf("error writing to \"%s\" store", collection)
		closeStoreFile(storeFile, collection)
		return &ErrStoreAccess{collection, err}
	}
	if err := storeFile.Close(); err != nil {
		logger.WithError(err).Errorf("error closing \"%s\" store after writing", collection)
		return &ErrStoreAccess{collection, err}
	}
	return nil
}

func closeStoreFile(storeFile *os.File, collection string) {
	if err := storeFile.Close(); err != nil {
		logger.WithError(err).Errorf("error closing \"%s\" store", collection)
	}
}
