package notification

type MockNotifier struct {
	SentNotifications []NotificationData
}

// NewMockNotifier creates a notifier that records instead of sending
func NewMockNotifier() *MockNotifier {
	return &MockNotifier{}
}

func (m *MockNotifier) Send(noticeType NoticeType, notification NotificationData, template NoticeTemplate) error {
	m.SentNotifications = append(m.SentNotifications, notification)
	return nil
}
