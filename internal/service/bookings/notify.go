package bookings

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-CallBookingService/internal/domain"
)

// Текст уведомления формируется сервисом, но НЕ отправляется автоматически:
// оператор копирует его и отправляет клиенту вручную. Это осознанное
// продуктовое решение, а не недоработка - автоматическую рассылку
// добавлять нельзя.

// renderApproveNotification формирует текст уведомления о подтверждении
func renderApproveNotification(b *domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Здравствуйте, %s!\n\n", b.ClientName)
	sb.WriteString("Ваш звонок подтверждён.\n")
	fmt.Fprintf(&sb, "Дата: %s\n", b.BookingDate.Format(domain.DateFormat))
	fmt.Fprintf(&sb, "Время: %s\n", b.BookingTime)

	if b.MeetingLink != nil && *b.MeetingLink != "" {
		fmt.Fprintf(&sb, "Ссылка на встречу: %s\n", *b.MeetingLink)
	} else {
		sb.WriteString("Ссылку на встречу отправим дополнительно.\n")
	}

	return sb.String()
}

// renderDenyNotification формирует текст уведомления об отмене
func renderDenyNotification(b *domain.Booking) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Здравствуйте, %s!\n\n", b.ClientName)
	fmt.Fprintf(&sb, "К сожалению, ваш звонок %s в %s отменён.\n",
		b.BookingDate.Format(domain.DateFormat), b.BookingTime)

	if b.CancellationReason != nil && *b.CancellationReason != "" {
		fmt.Fprintf(&sb, "Причина: %s\n", *b.CancellationReason)
	}

	sb.WriteString("Вы можете выбрать другой слот в расписании.\n")

	return sb.String()
}
