package repository

// CreateUserOptions holds parameters for inserting a new User.
type CreateUserOptions struct {
	Name         string
	Email        string
	PasswordHash string
	Profile      string
}

// GetOneUserOptions holds filter parameters for fetching a single User.
// All non-zero fields are applied as AND conditions.
type GetOneUserOptions struct {
	ID    int64
	Email string
}
