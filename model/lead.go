package model

import "time"

// Lead is the archived hand-off of a completed estimate.
type Lead struct {
	ID       string `json:"id"`
	ChatID   int64  `json:"chatID"`
	Username string `json:"username"`

	ParcelStatus    string `json:"parcelStatus"`
	SurveyStatus    string `json:"surveyStatus"`
	Locality        string `json:"locality"`
	ParcelType      string `json:"parcelType"`
	PerimeterMeters int    `json:"perimeterMeters"`
	FenceHeight     string `json:"fenceHeight"`
	ProjectType     string `json:"projectType"`

	ContactName  string `json:"contactName"`
	ContactPhone string `json:"contactPhone"`
	ContactEmail string `json:"contactEmail"`

	Estimate  int64     `json:"estimate"`
	Link      string    `json:"link"`
	CreatedAt time.Time `json:"createdAt"`

	//firebase
	DocumentID string `json:"-"`
}
