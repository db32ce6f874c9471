package errors

var (
	// Domain errors — used in usecase/repository
	ErrUserNotFound       = NotFound("user not found")
	ErrHandleTaken        = AlreadyExists("handle is already taken")
	ErrInvalidHandle      = InvalidArg("handle must be 3-32 chars, lowercase letters, numbers and underscores only")
	ErrInvalidDisplayName = InvalidArg("display name cannot be empty")
	ErrInvalidRole        = InvalidArg("role must be ARTIST or LOVER")
	ErrStudioNotFound     = NotFound("studio not found")
	ErrNotStudioMember    = NotFound("user is not a member of this studio")
)

func ErrRegistrationFailed(cause error) error {
	return Wrap(CodeInternal, "registration failed", cause)
}
