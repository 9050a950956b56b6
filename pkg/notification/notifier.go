package notification

// NotificationSystem represents a delivery channel (e.g., email).
type NotificationSystem string

// NoticeType identifies a kind of notice (e.g., password reset).
type NoticeType string

const (
	EmailSystem NotificationSystem = "email"

	PasswordResetNotice NoticeType = "password_reset_init"
	WelcomeNotice       NoticeType = "welcome"
)

// NotificationData carries the recipient and per-notice template data.
type NotificationData struct {
	To      string            // Recipient identifier (e.g., email address)
	Subject string            // Optional subject override
	Data    map[string]string // Template data
}

// NoticeTemplate holds the rendered content sources for a notice.
type NoticeTemplate struct {
	Subject string
	Text    string // text/template source for the plain-text body
	Html    string // html/template source for the HTML body, optional
}

// Notifier sends a rendered notice over one delivery channel.
type Notifier interface {
	Send(noticeType NoticeType, notification NotificationData, template NoticeTemplate) error
}
