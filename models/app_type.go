package models

// AppType identifies which client application produced a document. It is
// written into the document's application-type marker.
type AppType string

const (
	// AppPasswords stores a list of credential records.
	AppPasswords AppType = "passwords"

	// AppNotes stores free text plus an optional attachment.
	AppNotes AppType = "notes"
)

// allowedAppTypes is the exhaustive set of application types.
var allowedAppTypes = []AppType{AppPasswords, AppNotes}

// IsValid reports whether t is a known application type.
func (t AppType) IsValid() bool {
	for _, a := range allowedAppTypes {
		if t == a {
			return true
		}
	}
	return false
}

// SupportsAttachments reports whether documents of this type may carry the
// fn/slices extension fields.
func (t AppType) SupportsAttachments() bool {
	return t == AppNotes
}

func (t AppType) String() string {
	return string(t)
}
