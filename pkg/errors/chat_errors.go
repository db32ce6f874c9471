package errors

var (
	ErrConversationNotFound = NotFound("conversation not found")
	ErrParticipantNotFound  = NotFound("user is not a participant of this conversation")
	ErrIntakeNotFound       = NotFound("conversation intake not found")

	// The artist filter on accept/reject is an explicit authorization check,
	// not a silent zero-row update.
	ErrNotConversationArtist = Forbidden("only the requested artist can act on this conversation")

	ErrRequestAlreadyHandled = FailedPrecondition("conversation request has already been handled")
	ErrConversationTerminal  = FailedPrecondition("conversation is rejected, blocked or closed")
	ErrSendNotAllowed        = Forbidden("participant is not allowed to send messages in this conversation")

	ErrSelfConversation = InvalidArg("artist and lover must be different users")
	ErrSelfBlock        = InvalidArg("cannot block yourself")
	ErrMissingMessageID = InvalidArg("message id must be generated by the caller")
	ErrEmptyMessage     = InvalidArg("message needs text or media content")
)

func ErrRequestFailed(cause error) error {
	return Wrap(CodeInternal, "conversation request failed", cause)
}

func ErrSendFailed(cause error) error {
	return Wrap(CodeInternal, "message send failed", cause)
}
