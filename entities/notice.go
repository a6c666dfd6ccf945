package entities

type NoticeLevel string

const (
	NoticeInfo    NoticeLevel = "info"
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

// Notice is a user-visible message produced while handling a submission.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

func Info(msg string) Notice    { return Notice{Level: NoticeInfo, Message: msg} }
func Success(msg string) Notice { return Notice{Level: NoticeSuccess, Message: msg} }
func Warning(msg string) Notice { return Notice{Level: NoticeWarning, Message: msg} }
func Error(msg string) Notice   { return Notice{Level: NoticeError, Message: msg} }
