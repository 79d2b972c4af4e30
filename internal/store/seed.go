package store

import "ticketvault/internal/domain"

const placeholderImage = "/placeholder.svg?height=300&width=400"

// SeedInventory returns the marketplace listings a fresh store starts with.
func SeedInventory() []domain.EventListing {
	return []domain.EventListing{
		{
			ID:               1,
			Title:            "Taylor Swift - Eras Tour",
			Date:             "2024-08-15",
			Time:             "8:00 PM",
			Venue:            "Madison Square Garden",
			Location:         "New York, NY",
			Price:            150,
			OriginalPrice:    200,
			Image:            placeholderImage,
			Category:         "Concert",
			Rating:           4.9,
			SoldCount:        1250,
			Trending:         true,
			AvailableTickets: 15,
			Description:      "Experience the magic of Taylor Swift's record-breaking Eras Tour",
			LongDescription:  "The Eras Tour is Taylor Swift's sixth headlining concert tour, spanning her entire discography.",
			Highlights: []string{
				"3+ hour spectacular show",
				"Songs from all Taylor Swift eras",
				"Surprise acoustic performances",
				"Elaborate stage production",
				"Multiple costume changes",
			},
			VenueInfo: &domain.VenueInfo{
				Address:       "4 Pennsylvania Plaza, New York, NY 10001",
				Capacity:      "20,789",
				Parking:       "Available at Penn Station and nearby lots",
				Accessibility: "ADA compliant with wheelchair accessible seating",
			},
			Section: "Floor Section A",
			Row:     "12",
			Seats:   "15-16",
			Seller:  "TicketMaster",
		},
		{
			ID:               2,
			Title:            "Avengers: Secret Wars",
			Date:             "2024-07-20",
			Time:             "7:30 PM",
			Venue:            "AMC Empire 25",
			Location:         "New York, NY",
			Price:            25,
			OriginalPrice:    30,
			Image:            placeholderImage,
			Category:         "Movie",
			Rating:           4.8,
			SoldCount:        890,
			AvailableTickets: 8,
			Description:      "The ultimate Marvel showdown comes to the big screen",
			LongDescription:  "Avengers: Secret Wars brings together heroes from across the multiverse.",
			Highlights: []string{
				"Epic multiverse storyline",
				"All-star Marvel cast",
				"Cutting-edge visual effects",
				"IMAX and Dolby Atmos available",
				"Post-credits scenes",
			},
			VenueInfo: &domain.VenueInfo{
				Address:       "234 W 42nd St, New York, NY 10036",
				Capacity:      "500 seats",
				Parking:       "Times Square parking garages nearby",
				Accessibility: "Wheelchair accessible with assistive listening devices",
			},
			Section: "Premium Seats",
			Row:     "F",
			Seats:   "12-13",
			Seller:  "AMC Theatres",
		},
		{
			ID:               3,
			Title:            "Lakers vs Warriors",
			Date:             "2024-08-10",
			Time:             "8:00 PM",
			Venue:            "Crypto.com Arena",
			Location:         "Los Angeles, CA",
			Price:            120,
			OriginalPrice:    150,
			Image:            placeholderImage,
			Category:         "Sports",
			Rating:           4.7,
			SoldCount:        2100,
			Trending:         true,
			AvailableTickets: 12,
			Description:      "Epic NBA showdown between two legendary teams",
			LongDescription:  "The Los Angeles Lakers take on the Golden State Warriors in a highly anticipated matchup.",
			Highlights: []string{
				"Star-studded lineups",
				"Playoff implications",
				"Premium arena experience",
				"Pre-game entertainment",
				"Concession specials",
			},
			VenueInfo: &domain.VenueInfo{
				Address:       "1111 S Figueroa St, Los Angeles, CA 90015",
				Capacity:      "20,000",
				Parking:       "On-site parking available",
				Accessibility: "ADA compliant with special seating areas",
			},
			Section: "Lower Bowl",
			Row:     "15",
			Seats:   "8-9",
			Seller:  "StubHub",
		},
	}
}
