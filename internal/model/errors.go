package model

// ValidationError 用户可见的输入错误，Message 直接返回给前端
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

var (
	ErrRecipientRequired = &ValidationError{Field: "giftMode.recipientName", Message: "Recipient name is required for a gift plan"}
	ErrGoalsNotConfirmed = &ValidationError{Field: "goals", Message: "Confirm all goals before continuing"}
	ErrPosterInput       = &ValidationError{Field: "poster", Message: "templateUrl and userImageUrl are required"}
	ErrEmptyFile         = &ValidationError{Field: "file", Message: "No file provided"}
	ErrNotImage          = &ValidationError{Field: "file", Message: "Only image files can be uploaded"}
	ErrFileTooLarge      = &ValidationError{Field: "file", Message: "File is too large"}
)
