package models

import "fmt"

type ClaimStatus string

const (
	ClaimStatusPending   ClaimStatus = "Pending"
	ClaimStatusCompleted ClaimStatus = "Completed"
	ClaimStatusCancelled ClaimStatus = "Cancelled"
)

func ParseClaimStatus(s string) (ClaimStatus, error) {
	switch s {
	case "Pending":
		return ClaimStatusPending, nil
	case "Completed":
		return ClaimStatusCompleted, nil
	case "Cancelled":
		return ClaimStatusCancelled, nil
	default:
		return "", fmt.Errorf("invalid claim status: %s", s)
	}
}

// Claim links a receiver to a food listing. Claims are created outside this
// service; we only aggregate over them.
type Claim struct {
	ID         int64
	FoodID     int64
	ReceiverID int64
	Status     ClaimStatus
}
