package model

import (
	"time"
)

// Profile représente un utilisateur du site (coureur ou modérateur)
type Profile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Country   string    `json:"country,omitempty"`
	Avatar    string    `json:"avatar,omitempty"`
	Bio       string    `json:"bio,omitempty"`
	YoutubeURL string   `json:"youtubeUrl,omitempty"`
	TwitchURL string    `json:"twitchUrl,omitempty"`
	Moderator bool      `json:"moderator"`
	JoinDate  time.Time `json:"joinDate,omitempty"`
}

// Notification avertit un utilisateur qu'un modérateur a traité sa soumission
type Notification struct {
	ID           string    `json:"id"`
	ProfileID    string    `json:"profileId"`
	SubmissionID string    `json:"submissionId,omitempty"`
	Type         string    `json:"type"` // approve, delete
	Message      string    `json:"message,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}
