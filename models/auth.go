package models

// AuthUserDetails is a representation of user details retrieved from the eric headers in a request
type AuthUserDetails struct {
	Email    string `json:"email,omitempty"    bson:"email,omitempty"`
	Forename string `json:"forename,omitempty" bson:"forename,omitempty"`
	Surname  string `json:"surname,omitempty"  bson:"surname,omitempty"`
	ID       string `json:"id"                 bson:"id"`
}
