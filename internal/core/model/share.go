package model

type ShareID string

// ShareRequest is the payload sent to create a share. Password and Reference
// are omitted from the wire format when empty.
type ShareRequest struct {
	Text             string `json:"text"`
	ExpiresIn        string `json:"expires_in"`
	Password         string `json:"password,omitempty"`
	BurnAfterReading bool   `json:"burn_after_reading"`
	Reference        string `json:"reference,omitempty"`
}

type Share struct {
	ID               ShareID `json:"id"`
	URL              string  `json:"url"`
	ExpiresAt        string  `json:"expires_at"`
	Password         bool    `json:"password,omitempty"`
	BurnAfterReading bool    `json:"burn_after_reading,omitempty"`
	Reference        string  `json:"reference,omitempty"`
	Usage            *Usage  `json:"usage,omitempty"`
}

type SharedContent struct {
	ID               ShareID `json:"id"`
	Text             string  `json:"text"`
	ExpiresAt        string  `json:"expires_at"`
	BurnAfterReading bool    `json:"burn_after_reading,omitempty"`
}

type Usage struct {
	Current int64  `json:"current"`
	Limit   int64  `json:"limit"`
	Plan    string `json:"plan,omitempty"`
}
