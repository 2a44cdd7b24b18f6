package models

import (
	"fmt"
	"time"
)

// PointsGrant is one signed adjustment in a user's append-only points ledger.
// The profile's stored points balance equals the running sum of its grants.
type PointsGrant struct {
	GrantId   string    `dynamodbav:"grant_id" json:"id"`
	UserId    string    `dynamodbav:"user_id" json:"userId"`
	Amount    int       `dynamodbav:"amount" json:"amount"`
	Reason    string    `dynamodbav:"reason" json:"reason"`
	GrantedBy string    `dynamodbav:"granted_by" json:"grantedBy"`
	CreatedAt time.Time `dynamodbav:"created_at" json:"createdAt"`

	PK string `dynamodbav:"PK" json:"-"`
	SK string `dynamodbav:"SK" json:"-"`
}

// Key handlers

// Grants live in the owning user's partition, sorted by creation time so a
// single query returns the ledger in order.
func GrantSK(createdAt time.Time, grantID string) string {
	return fmt.Sprintf("GRANT#%s#%s", createdAt.UTC().Format(time.RFC3339Nano), grantID)
}

func GrantSKPrefix() string {
	return "GRANT#"
}
