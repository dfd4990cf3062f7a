package models

import "time"

// StatusCheckRequest is the body of POST /api/status
type StatusCheckRequest struct {
	ClientName string `json:"client_name" binding:"required,max=200"`
}

// StatusCheck records a client liveness ping
type StatusCheck struct {
	ID         string    `json:"id"`
	ClientName string    `json:"client_name"`
	Timestamp  time.Time `json:"timestamp"`
}
