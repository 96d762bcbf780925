package record

// Form carries the multipart text fields of a create or update request,
// already trimmed. File references travel separately (the upload
// middleware stores files before the controller runs).
type Form struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
}
