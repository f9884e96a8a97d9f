package model

import "time"

// Role values stored in users.role.  The vocabulary is fixed; tokens carry
// one of these strings in their role claim and the routing layer enforces
// role sets against it.
const (
	RoleStudent        = "student"
	RoleTeacher        = "teacher"
	RoleAdminLangganan = "admin_langganan" // subscription admin
	RoleAdminSekolah   = "admin_sekolah"   // school admin
	RoleKepalaSekolah  = "kepala_sekolah"  // headmaster
	RoleParent         = "parent"
)

// User represents an account record as stored in the `users` table.
// Accounts are created out of band; this service only reads them during
// login.  The stored password is a bcrypt hash and is never serialized:
// the json:"-" tag keeps it out of every response body.
//
// Fields:
//  ID       – primary key (UUID string).
//  Password – bcrypt hash of the account password.
//  Email    – unique email address used for login.
//  Role     – one of the Role* constants above.
//  Name     – display name returned to the caller on login.
type User struct {
	ID                       string     `json:"id"`
	Password                 string     `json:"-"`
	Email                    string     `json:"email"`
	Role                     string     `json:"role"`
	Name                     string     `json:"name"`
	Grade                    *int       `json:"grade,omitempty"`
	SchoolName               *string    `json:"school_name,omitempty"`
	SchoolProvince           *string    `json:"school_province,omitempty"`
	SchoolSubscriptionStatus *string    `json:"school_subscription_status,omitempty"`
	CreatedAt                *time.Time `json:"created_at,omitempty"`
}

// AccountSummary is the row shape returned by the admin user listing.
type AccountSummary struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}
