package filestore

// NextID allocates the next identifier for a collection: max(id)+1, or 1
// when the collection is empty. It must be called inside the transaction
// that inserts the record that consumes it — allocating against a stale
// snapshot lets two concurrent inserts claim the same id.
func NextID[T Record](records []T) int {
	maxID := 0
	for _, r := range records {
		if id := r.RecordID(); id > maxID {
			maxID = id
		}
	}
	return maxID + 1
}
