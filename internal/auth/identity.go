package auth

// Identity is the caller a validated token describes.
type Identity struct {
	// Subject is who the token was issued to.
	Subject string
	// ActAs is the NetID to impersonate against SWS, if granted.
	ActAs string
	// TokenID is the token's jti.
	TokenID string
}

// ActingAs returns the NetID requests should impersonate: ActAs when set,
// otherwise the subject.
func (i Identity) ActingAs() string {
	if i.ActAs != "" {
		return i.ActAs
	}
	return i.Subject
}
