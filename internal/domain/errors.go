package domain

import "errors"

var (
	ErrIncompleteDate    = errors.New("birth date not fully selected")
	ErrInvalidDate       = errors.New("not a valid calendar date")
	ErrStemOutOfRange    = errors.New("stem index out of range")
	ErrInvalidTransition = errors.New("operation not allowed in current state")
	ErrNoResult          = errors.New("no diagnosis result")
	ErrFeatureDisabled   = errors.New("feature disabled")
	ErrCopyFailed        = errors.New("copy to clipboard failed")
)

// userMessages holds the text shown to the user for recoverable errors.
var userMessages = []struct {
	err error
	msg string
}{
	{ErrIncompleteDate, "生年月日を選択してください。"},
	{ErrInvalidDate, "有効な日付を入力してください。"},
	{ErrCopyFailed, "コピーに失敗しました。手動でコピーしてください。"},
}

// UserMessage returns the user-facing text for err, or "" if err is not one
// the user can act on.
func UserMessage(err error) string {
	for _, um := range userMessages {
		if errors.Is(err, um.err) {
			return um.msg
		}
	}
	return ""
}
