package model

import "time"

// Session contains the data stored for a logged-in admin session.
type Session struct {
	Username        string    `json:"username"`
	IsAuthenticated bool      `json:"isAuthenticated"`
	LoginTime       time.Time `json:"loginTime"`
}
