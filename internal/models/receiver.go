package models

// Receiver is an organization or individual that claims surplus food.
// Receivers are managed outside this service; we only read them.
type Receiver struct {
	ID   int64
	Name string
	City string
}
