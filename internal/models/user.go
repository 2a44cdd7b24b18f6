package models

import (
	"fmt"
	"time"
)

type UserRole string

const (
	RoleMember UserRole = "member"
	RoleAdmin  UserRole = "admin"
)

type User struct {
	UserId      string    `dynamodbav:"user_id" json:"uid"`
	DisplayName string    `dynamodbav:"display_name" json:"displayName"`
	Email       string    `dynamodbav:"email" json:"email"`
	Role        UserRole  `dynamodbav:"role" json:"role"`
	Points      int       `dynamodbav:"points" json:"points"`
	IsActive    bool      `dynamodbav:"is_active" json:"isActive"`
	Avatar      string    `dynamodbav:"avatar,omitempty" json:"avatar,omitempty"`
	JoinDate    time.Time `dynamodbav:"join_date" json:"joinDate"`
	UpdatedAt   time.Time `dynamodbav:"updated_at" json:"updatedAt"`

	PK string `dynamodbav:"PK" json:"-"`
	SK string `dynamodbav:"SK" json:"-"`

	GSI1PK string `dynamodbav:"GSI1PK" json:"-"`
	GSI1SK string `dynamodbav:"GSI1SK" json:"-"`
}

// Key handlers

func UserPK(userId string) string {
	return fmt.Sprintf("USER#%s", userId)
}

func ProfileSK() string {
	return "PROFILE"
}

func UserGSI1PK() string {
	return "ENTITY#USER"
}

func JoinedGSI1SK(joinedAt string) string {
	return fmt.Sprintf("JOINED#%s", joinedAt)
}

func ExtractUserID(pk string) (string, error) {
	if len(pk) < 6 || pk[:5] != "USER#" {
		return "", fmt.Errorf("invalid user PK format: %s", pk)
	}
	return pk[5:], nil
}
