package models

// MomentResourceDB is a single purchasable photo as stored in the DB.
// Read-only from this service's perspective.
type MomentResourceDB struct {
	ID              string `bson:"_id"`
	CollectionID    string `bson:"collection_id"`
	PhotographerID  string `bson:"photographer_id"`
	Filename        string `bson:"filename"`
	MimeType        string `bson:"mime_type"`
	Bucket          string `bson:"bucket"`
	Location        string `bson:"location"`
	ResizedLocation string `bson:"resized_location"`
}

// CollectionResourceDB groups moments under one photographer and carries the
// per-photo price, in pence, used to compute order totals
type CollectionResourceDB struct {
	ID             string `bson:"_id"`
	PhotographerID string `bson:"photographer_id"`
	Name           string `bson:"name"`
	Price          int64  `bson:"price"`
}
