package models

import "time"

// Review is an independent, append-only community review. It is never
// reconciled against any itinerary.
type Review struct {
	ReviewID  string    `json:"reviewid" bson:"reviewid"`
	Author    string    `json:"author" bson:"author"`
	Location  string    `json:"location" bson:"location"`
	Category  string    `json:"category,omitempty" bson:"category,omitempty"`
	Rating    int       `json:"rating" bson:"rating"` // 1..5
	Text      string    `json:"text" bson:"text"`
	Likes     int       `json:"likes,omitempty" bson:"likes,omitempty"`
	Tags      []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	Image     string    `json:"image,omitempty" bson:"image,omitempty"`
	Thumb     string    `json:"thumb,omitempty" bson:"thumb,omitempty"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}
