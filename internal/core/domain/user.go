package domain

// User identifies a chat-platform account as delivered by the gateway.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
