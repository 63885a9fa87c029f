package utils

import (
	"fmt"
	"html"
	"time"
)

// SendRSVPNotificationEmail tells the organizer that an RSVP was relayed to the sheet.
func SendRSVPNotificationEmail(cfg SMTPConfig, to, guestName, attendance, submittedAt string) error {
	subject := fmt.Sprintf("🎓 RSVP mới: %s (%s)", guestName, attendance)
	return SendEmail(cfg, to, subject, RSVPNotificationBody(guestName, attendance, submittedAt))
}

func RSVPNotificationBody(guestName, attendance, submittedAt string) string {
	return fmt.Sprintf(`
	<!DOCTYPE html>
	<html lang="vi">
	<head>
		<meta charset="UTF-8" />
		<meta name="viewport" content="width=device-width, initial-scale=1.0" />
		<title>RSVP mới</title>
		<style>
			body {
				font-family: 'Segoe UI', Roboto, Arial, sans-serif;
				background-color: #f7f5f0;
				margin: 0;
				padding: 0;
				color: #333333;
			}
			.container {
				max-width: 480px;
				margin: 25px auto;
				background: #ffffff;
				border-radius: 12px;
				border-top: 6px solid #8b1e3f;
				box-shadow: 0 6px 20px rgba(0, 0, 0, 0.06);
				overflow: hidden;
			}
			.content {
				padding: 28px 32px;
			}
			.label {
				color: #888888;
				font-size: 13px;
				margin-bottom: 4px;
			}
			.value {
				font-size: 16px;
				font-weight: 600;
				margin-bottom: 16px;
			}
			.footer {
				background: #faf7f2;
				text-align: center;
				padding: 18px;
				font-size: 12px;
				color: #777777;
			}
		</style>
	</head>
	<body>
		<div class="container">
			<div class="content">
				<div class="label">Khách mời</div>
				<div class="value">%s</div>
				<div class="label">Trạng thái</div>
				<div class="value">%s</div>
				<div class="label">Thời gian</div>
				<div class="value">%s</div>
			</div>
			<div class="footer">
				&copy; %d Lễ tốt nghiệp. Phản hồi đã được ghi vào bảng tính.
			</div>
		</div>
	</body>
	</html>
	`, html.EscapeString(guestName), html.EscapeString(attendance), html.EscapeString(submittedAt), time.Now().Year())
}
