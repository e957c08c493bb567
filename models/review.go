package models

// Review is a guest review. IDs are sequential, assigned by the store.
type Review struct {
	ID     int    `bson:"id" json:"id"`
	Name   string `bson:"name" json:"name"`
	Email  string `bson:"email" json:"email"`
	Review string `bson:"review" json:"review"`
	User   string `bson:"user" json:"user"`
}
