package models

import "time"

// Roles resolved at login.
const (
	RoleCustomer = "customer"
	RoleTrainer  = "trainer"
	RoleAdmin    = "admin"
)

// LoginRequest is the name/phone triple submitted to the login endpoint.
// Presence is checked by the service so that blank values get the login message.
type LoginRequest struct {
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	PhoneNumber string `json:"phoneNumber"`
}

// LoginResponse describes the resolved identity and the access token issued for it.
type LoginResponse struct {
	Success     bool      `json:"success"`
	UserType    string    `json:"userType"`
	UserID      int64     `json:"userId"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	AccessToken string    `json:"accessToken,omitempty"`
	ExpiresAt   time.Time `json:"expiresAt"`
}

// CurrentUser is what an access token says about its bearer.
type CurrentUser struct {
	UserID    int64     `json:"userId"`
	Username  string    `json:"username"`
	UserType  string    `json:"userType"`
	ExpiresAt time.Time `json:"expiresAt"`
}
