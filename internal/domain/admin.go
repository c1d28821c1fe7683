package domain

// Admin is the single site-admin principal. There are no user accounts;
// the admin's email and bcrypt password hash come from configuration.
type Admin struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}
