package domain

// Account holds a registered shopper. The password is stored as entered: this
// is a local single-user demo, not a security boundary.
type Account struct {
	ID         int64  `json:"id"`
	ExternalID string `json:"external_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Password   string `json:"password"`
	CreatedAt  int64  `json:"created_at"`
}
