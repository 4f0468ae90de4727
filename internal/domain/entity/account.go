package entity

// Account is the signed-in user as reflected by the hosted identity
// provider. The service never stores credentials; this is a projection
// of the provider's record plus locally resolved roles.
type Account struct {
	UID         string `json:"uid"`          // Provider-assigned unique identifier.
	Email       string `json:"email"`        // Login email.
	DisplayName string `json:"display_name"` // Profile display name.
	PhotoURL    string `json:"photo_url"`    // Profile image URL.
	Roles       Roles  `json:"roles"`        // Locally resolved roles.
}
