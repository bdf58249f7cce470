package entity

import "time"

// Gate is a physical boarding point. Available flips exclusively through the
// gate allocator in response to flight lifecycle events.
type Gate struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	Code      string    `bson:"code" json:"code"` // unique, uppercase
	Available bool      `bson:"available" json:"available"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt" json:"updatedAt"`
}
