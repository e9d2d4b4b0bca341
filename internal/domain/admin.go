package domain

// Admin is a back-office account, created by the seed tool only. Password is
// untyped on purpose: depending on the deployment it holds a bcrypt hash, a
// plain string, or a bare number. The configured password policy decides how
// it is compared.
type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password any    `json:"password"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
