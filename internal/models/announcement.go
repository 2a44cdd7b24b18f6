package models

import (
	"fmt"
	"time"
)

type AnnouncementPriority string

const (
	PriorityNormal    AnnouncementPriority = "normal"
	PriorityImportant AnnouncementPriority = "important"
	PriorityUrgent    AnnouncementPriority = "urgent"
)

type TargetAudience string

const (
	AudienceAll     TargetAudience = "all"
	AudienceMembers TargetAudience = "members"
	AudienceAdmins  TargetAudience = "admins"
)

type Announcement struct {
	AnnouncementId string               `dynamodbav:"announcement_id" json:"id"`
	Title          string               `dynamodbav:"title" json:"title"`
	Content        string               `dynamodbav:"content" json:"content"`
	Priority       AnnouncementPriority `dynamodbav:"priority" json:"priority"`
	TargetAudience TargetAudience       `dynamodbav:"target_audience" json:"targetAudience"`
	AuthorId       string               `dynamodbav:"author_id" json:"authorId"`
	AuthorName     string               `dynamodbav:"author_name" json:"authorName"`
	IsActive       bool                 `dynamodbav:"is_active" json:"isActive"`
	ReadBy         []string             `dynamodbav:"read_by" json:"readBy"`
	ExpiresAt      *time.Time           `dynamodbav:"expires_at,omitempty" json:"expiresAt,omitempty"`
	CreatedAt      time.Time            `dynamodbav:"created_at" json:"createdAt"`
	UpdatedAt      time.Time            `dynamodbav:"updated_at" json:"updatedAt"`

	PK string `dynamodbav:"PK" json:"-"`
	SK string `dynamodbav:"SK" json:"-"`

	GSI1PK string `dynamodbav:"GSI1PK" json:"-"`
	GSI1SK string `dynamodbav:"GSI1SK" json:"-"`
}

// IsExpired reports whether the announcement is past its expiry at the given
// time. Expired records stay in the store; exclusion is a read-time concern.
func (a *Announcement) IsExpired(now time.Time) bool {
	return a.ExpiresAt != nil && now.After(*a.ExpiresAt)
}

// ReadCount is the derived count the dashboard displays.
func (a *Announcement) ReadCount() int {
	return len(a.ReadBy)
}

// Key handlers

func AnnouncementPK(announcementID string) string {
	return fmt.Sprintf("ANNOUNCEMENT#%s", announcementID)
}

func AnnouncementGSI1PK() string {
	return "ENTITY#ANNOUNCEMENT"
}
