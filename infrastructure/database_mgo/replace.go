package database_mgo

// ReplacedErr maps a ReplaceOne outcome onto a not-found error. Only a zero
// match means the document is missing; a matched but byte-identical replace
// is a successful no-op and must not surface as an error.
func ReplacedErr(matchedCount int64, notFound error) error {
	if matchedCount == 0 {
		return notFound
	}
	return nil
}
