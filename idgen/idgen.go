// monotonic identifier sequences for courses and members, persisted so that
// process restarts never reuse an identifier already issued
package idgen

import (
	"fmt"
	"github.com/DAv10195/campus_registry/store"
	"github.com/boltdb/bolt"
	"github.com/dchest/uniuri"
	"github.com/sirupsen/logrus"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

var logger = logrus.WithField("component", "idgen")

var db *bolt.DB

// initialize the identifier sequences in the given directory. Sequences that
// don't exist yet are seeded from the highest identifier already persisted in
// the record stores
func Init(dir string) error {
	dbPath := filepath.Join(dir, dbFileName)
	logger.Infof("loading identifier sequences from %s ...", dbPath)
	boltDb, err := bolt.Open(dbPath, dbPerms, &bolt.Options{Timeout: dbOpenTimeout})
	if err != nil {
		logger.WithError(err).Errorf("failed to load identifier sequences from %s", dbPath)
		return err
	}
	db = boltDb
	if err := db.Update(func (tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(sequences))
		if err != nil {
			return err
		}
		if bucket.Get([]byte(crnKey)) == nil {
			seed := seedCrnSequence()
			logger.Infof("seeding \"%s\" sequence with %d", crnKey, seed)
			if err := bucket.Put([]byte(crnKey), []byte(strconv.FormatInt(seed, 10))); err != nil {
				return err
			}
		}
		if bucket.Get([]byte(memberKey)) == nil {
			seed := seedMemberSequence()
			logger.Infof("seeding \"%s\" sequence with %d", memberKey, seed)
			if err := bucket.Put([]byte(memberKey), []byte(strconv.FormatInt(seed, 10))); err != nil {
				return err
			}
		}
		return nil
	}); err != nil {
		logger.WithError(err).Errorf("failed to initialize identifier sequences at %s", dbPath)
		return err
	}
	logger.Infof("identifier sequences loaded successfully from %s", dbPath)
	return nil
}

// initializes identifier sequences for testing and returns a cleanup function
func InitForTest() func() {
	path := filepath.Join(os.TempDir(), fmt.Sprintf("campus_test_idgen_%s", uniuri.New()))
	if err := os.MkdirAll(path, 0755); err != nil {
		panic(err)
	}
	if err := Init(path); err != nil {
		panic(err)
	}
	return func() {
		if err := Close(); err != nil {
			panic(err)
		}
		if err := os.RemoveAll(path); err != nil {
			panic(err)
		}
	}
}

// close the underlying sequence storage
func Close() error {
	if db == nil {
		return nil
	}
	err := db.Close()
	db = nil
	return err
}

type storedCrn struct {
	CRN	int	`json:"CRN"`
}

type storedMemberID struct {
	ID	string	`json:"ID"`
}

// the highest CRN already persisted, or the counter base on a fresh data dir
func seedCrnSequence() int64 {
	seed := int64(counterBase)
	records, err := store.Records[storedCrn](store.Courses)
	if err != nil {
		logger.WithError(err).Warn("error scanning persisted courses, seeding the crn sequence with its base value")
		return seed
	}
	for _, record := range records {
		if int64(record.CRN) > seed {
			seed = int64(record.CRN)
		}
	}
	return seed
}

// the highest member id counter already persisted across employees and
// students, or the counter base on a fresh data dir
func seedMemberSequence() int64 {
	seed := int64(counterBase)
	for _, collection := range []string{store.Employees, store.Students} {
		records, err := store.Records[storedMemberID](collection)
		if err != nil {
			logger.WithError(err).Warnf("error scanning persisted %s, seeding the member sequence without them", collection)
			continue
		}
		for _, record := range records {
			numeric := strings.TrimPrefix(record.ID, MemberIDPrefix)
			if numeric == record.ID {
				continue
			}
			value, err := strconv.ParseInt(numeric, 10, 64)
			if err != nil {
				continue
			}
			if value > seed {
				seed = value
			}
		}
	}
	return seed
}

// advance the sequence stored under the given key by exactly 1 and return the
// advanced value
func nextValue(key string) (int64, error) {
	if db == nil {
		return 0, &ErrNotInitialized{}
	}
	var next int64
	if err := db.Update(func (tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sequences))
		if bucket == nil {
			return &ErrNotInitialized{}
		}
		current, err := strconv.ParseInt(string(bucket.Get([]byte(key))), 10, 64)
		if err != nil {
			return &ErrCorruptSequence{key}
		}
		next = current + 1
		return bucket.Put([]byte(key), []byte(strconv.FormatInt(next, 10)))
	}); err != nil {
		logger.WithError(err).Errorf("error advancing \"%s\" sequence", key)
		return 0, err
	}
	return next, nil
}

// NextCRN returns the next unique course reference number
func NextCRN() (int, error) {
	crn, err := nextValue(crnKey)
	if err != nil {
		return 0, err
	}
	return int(crn), nil
}

// NextMemberID returns the next unique member identifier
func NextMemberID() (string, error) {
	counter, err := nextValue(memberKey)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%d", MemberIDPrefix, counter), nil
}
