package models

import "time"

// TicketStatusOpen статус нового обращения. Закрываются обращения вне приложения.
const TicketStatusOpen = "open"

// SupportTicket представляет обращение клиента в поддержку.
// Subject и Message сохраняются уже очищенными от разметки.
type SupportTicket struct {
	ID        int64
	UserID    int64
	Subject   string
	Message   string
	Status    string
	CreatedAt time.Time
}
