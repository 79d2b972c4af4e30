package domain

import (
	"time"
)

// EventListing is a seller's offer of tickets for one event. The same shape is
// used on the wire and in every storage backend.
type EventListing struct {
	ID               int64      `json:"id" firestore:"id" bson:"id"`
	Title            string     `json:"title" firestore:"title" bson:"title"`
	Date             string     `json:"date" firestore:"date" bson:"date"`
	Time             string     `json:"time,omitempty" firestore:"time,omitempty" bson:"time,omitempty"`
	Venue            string     `json:"venue" firestore:"venue" bson:"venue"`
	Location         string     `json:"location" firestore:"location" bson:"location"`
	Price            float64    `json:"price" firestore:"price" bson:"price"`
	OriginalPrice    float64    `json:"originalPrice" firestore:"originalPrice" bson:"originalPrice"`
	Image            string     `json:"image,omitempty" firestore:"image,omitempty" bson:"image,omitempty"`
	Category         string     `json:"category" firestore:"category" bson:"category"`
	Rating           float64    `json:"rating" firestore:"rating" bson:"rating"`
	SoldCount        int        `json:"soldCount" firestore:"soldCount" bson:"soldCount"`
	Trending         bool       `json:"trending" firestore:"trending" bson:"trending"`
	AvailableTickets int        `json:"availableTickets" firestore:"availableTickets" bson:"availableTickets"`
	TransferMethod   string     `json:"transferMethod,omitempty" firestore:"transferMethod,omitempty" bson:"transferMethod,omitempty"`
	Description      string     `json:"description" firestore:"description" bson:"description"`
	LongDescription  string     `json:"longDescription,omitempty" firestore:"longDescription,omitempty" bson:"longDescription,omitempty"`
	Highlights       []string   `json:"highlights,omitempty" firestore:"highlights,omitempty" bson:"highlights,omitempty"`
	VenueInfo        *VenueInfo `json:"venue_info,omitempty" firestore:"venue_info,omitempty" bson:"venue_info,omitempty"`
	Section          string     `json:"section,omitempty" firestore:"section,omitempty" bson:"section,omitempty"`
	Row              string     `json:"row,omitempty" firestore:"row,omitempty" bson:"row,omitempty"`
	Seats            string     `json:"seats,omitempty" firestore:"seats,omitempty" bson:"seats,omitempty"`
	Seller           string     `json:"seller" firestore:"seller" bson:"seller"`
	SellerEmail      string     `json:"sellerEmail,omitempty" firestore:"sellerEmail,omitempty" bson:"sellerEmail,omitempty"`
	IsUserListing    bool       `json:"isUserListing" firestore:"isUserListing" bson:"isUserListing"`
	CreatedAt        time.Time  `json:"createdAt" firestore:"createdAt" bson:"createdAt"`
}

// VenueInfo is the nested venue description shown on the event page.
type VenueInfo struct {
	Address       string `json:"address" firestore:"address" bson:"address"`
	Capacity      string `json:"capacity,omitempty" firestore:"capacity,omitempty" bson:"capacity,omitempty"`
	Parking       string `json:"parking,omitempty" firestore:"parking,omitempty" bson:"parking,omitempty"`
	Accessibility string `json:"accessibility,omitempty" firestore:"accessibility,omitempty" bson:"accessibility,omitempty"`
}

// Clone returns a deep copy so callers cannot alias stored slices or pointers.
func (l EventListing) Clone() EventListing {
	c := l
	if l.Highlights != nil {
		c.Highlights = append([]string(nil), l.Highlights...)
	}
	if l.VenueInfo != nil {
		vi := *l.VenueInfo
		c.VenueInfo = &vi
	}
	return c
}

// Identity is the authenticated caller as reported by the identity provider.
type Identity struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Image string `json:"image,omitempty"`
}
