// internal/models/email.go
package models

// EmailData is the sole artifact handed to the mail transport.
type EmailData struct {
	NotificationID   string   `json:"notificationId"`
	ToAddresses      []string `json:"toAddresses"`
	ReplyToAddresses []string `json:"replyToAddresses"`
	SourceEmail      string   `json:"sourceEmail"`
	Subject          string   `json:"subject"`
	BodyText         string   `json:"bodyText"`
	BodyHTML         string   `json:"bodyHTML"`
}
