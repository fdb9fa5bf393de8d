package entity

import "time"

// Activity is one admin action in the audit trail.
type Activity struct {
	ID       string    `json:"id"`
	Action   string    `json:"action"`
	Entity   string    `json:"entity"`
	EntityID string    `json:"entityId"`
	Detail   string    `json:"detail,omitempty"`
	At       time.Time `json:"at"`
}
