package models

// UserProviderData mirrors the provider entries synced from the identity
// provider export.
type UserProviderData struct {
	ProviderID  string `bson:"providerId,omitempty" json:"providerId"`
	UID         string `bson:"uid,omitempty" json:"uid"`
	DisplayName string `bson:"displayName,omitempty" json:"displayName,omitempty"`
	Email       string `bson:"email,omitempty" json:"email,omitempty"`
}

type UserMetadata struct {
	CreationTime   string `bson:"creationTime,omitempty"`
	LastSignInTime string `bson:"lastSignInTime,omitempty"`
}

// UserDoc is the stored shape of a user record. Users imported from the
// identity provider keep timestamps under metadata; locally created ones use
// top-level fields.
type UserDoc struct {
	ID             interface{}            `bson:"_id,omitempty"`
	UID            string                 `bson:"uid,omitempty"`
	Email          string                 `bson:"email,omitempty"`
	DisplayName    string                 `bson:"displayName,omitempty"`
	PhotoURL       string                 `bson:"photoURL,omitempty"`
	EmailVerified  bool                   `bson:"emailVerified,omitempty"`
	Disabled       bool                   `bson:"disabled,omitempty"`
	ProviderData   []UserProviderData     `bson:"providerData,omitempty"`
	Metadata       *UserMetadata          `bson:"metadata,omitempty"`
	CreatedAt      string                 `bson:"createdAt,omitempty"`
	LastSignInTime string                 `bson:"lastSignInTime,omitempty"`
	CustomClaims   map[string]interface{} `bson:"customClaims,omitempty"`
}

type User struct {
	ID             string                 `json:"id"`
	UID            string                 `json:"uid"`
	Email          string                 `json:"email"`
	DisplayName    string                 `json:"displayName"`
	PhotoURL       *string                `json:"photoURL"`
	EmailVerified  bool                   `json:"emailVerified"`
	Disabled       bool                   `json:"disabled"`
	Provider       string                 `json:"provider"`
	CreatedAt      string                 `json:"createdAt"`
	LastSignInTime string                 `json:"lastSignInTime"`
	CustomClaims   map[string]interface{} `json:"customClaims"`
}
