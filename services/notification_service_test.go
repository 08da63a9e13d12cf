package services

import "testing"

func TestSendLoginIDSkipsWhenSMTPNotConfigured(t *testing.T) {
	called := false
	svc := NewNotificationService(func(to []string, subject, body string) error {
		called = true
		return nil
	})
	svc.configured = func() bool { return false }

	if err := svc.SendLoginID("jane@x.edu", "Jane Doe", 3); err != nil {
		t.Fatalf("SendLoginID returned error: %v", err)
	}
	if called {
		t.Fatalf("expected no mail to be sent")
	}
}
