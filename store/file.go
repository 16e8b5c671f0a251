package store

import (
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/safestride/routing/router"
)

// LoadCrimeFile reads a JSON export of the crimes collection: an array of
// documents with "Location" and "CRIMETYPE" fields.
func LoadCrimeFile(path string) ([]router.CrimeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "store: read %s", path)
	}
	var docs []crimeDocument
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, eris.Wrapf(err, "store: parse %s", path)
	}
	records := crimesFromDocuments(docs)
	log.Infof("loaded %d crime records from %s", len(records), path)
	return records, nil
}
