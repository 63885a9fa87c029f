package rsvp

import (
	"fmt"

	"github.com/quannhg/graduation-invitation/internal/models"
)

const (
	MsgSubmitFailed  = "✗ Đã xảy ra lỗi khi gửi xác nhận. Vui lòng thử lại sau hoặc liên hệ trực tiếp sdt/facebook ở cuối trang."
	MsgNotConfigured = "⚠️ Vui lòng cấu hình Google Apps Script URL (APPS_SCRIPT_URL) để gửi form."
)

// SuccessMessage is shown once the submission left without a transport error.
func SuccessMessage(a models.Attendance, displayName string) string {
	if a == models.Attending {
		return fmt.Sprintf("✓ Cảm ơn %s! Rất mong được gặp bạn tại buổi lễ!", displayName)
	}
	return fmt.Sprintf("✓ Cảm ơn %s đã phản hồi. Rất tiếc vì bạn không thể tham dự. Hy vọng sẽ có dịp gặp bạn sau!", displayName)
}

func occasionFor(displayName string) string {
	return fmt.Sprintf("Mời %s đến tham dự", displayName)
}

func signatureNoteFor(displayName string) string {
	return fmt.Sprintf("Gửi đến %s", displayName)
}
