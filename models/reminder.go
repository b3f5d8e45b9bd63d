package models

// PickupReminderPayload is the queued payload for a scheduled pickup reminder.
type PickupReminderPayload struct {
	OrderID     string `json:"orderId"`
	UserID      string `json:"userId"`
	Phone       string `json:"phone"`
	ServiceName string `json:"serviceName"`
	SlotLabel   string `json:"slotLabel"`
}
