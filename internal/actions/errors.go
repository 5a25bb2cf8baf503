package actions

// UserError carries an in-game message for the player. It is not a
// system failure - just input the adventure has nothing to do with.
type UserError struct {
	Message string
}

func (e *UserError) Error() string {
	return e.Message
}

// NewUserError creates a user-facing error.
func NewUserError(msg string) *UserError {
	return &UserError{Message: msg}
}
