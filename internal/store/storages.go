package store

// Storages groups the storage components a vault needs into a single value
// that can be passed around the service layer.
type Storages struct {
	// Slot is the in-memory holder of the current envelope.
	Slot EnvelopeSlot

	// Documents reads and writes host documents and attachments on disk.
	Documents DocumentFileStorage
}

// NewStorages constructs a Storages value with an empty envelope slot and
// the local file storage.
func NewStorages() *Storages {
	return &Storages{
		Slot:      NewEnvelopeSlot(),
		Documents: NewDocumentFileStorage(),
	}
}
