package models

// Channel, bir sunucuya ait metin kanalı.
// Sunucu serialize edilirken kanalları iç içe (nested) gönderilir.
type Channel struct {
	ID       int64   `json:"id"`
	ServerID int64   `json:"server"`
	Name     string  `json:"name"`
	Topic    *string `json:"topic"`
	OwnerID  string  `json:"owner"`
}
