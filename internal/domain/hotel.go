package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type HotelRating string

const (
	RatingOneStar   HotelRating = "OneStar"
	RatingTwoStar   HotelRating = "TwoStar"
	RatingThreeStar HotelRating = "ThreeStar"
	RatingFourStar  HotelRating = "FourStar"
	RatingFiveStar  HotelRating = "FiveStar"
)

type Hotel struct {
	ID            string          `json:"hotelId"`
	HotelCode     string          `json:"hotelCode,omitempty"`
	Name          string          `json:"hotelName"`
	CityName      string          `json:"cityName,omitempty"`
	CountryName   string          `json:"countryName,omitempty"`
	Location      string          `json:"location"`
	Address       string          `json:"address,omitempty"`
	Rating        HotelRating     `json:"hotelRating,omitempty"`
	PricePerNight decimal.Decimal `json:"pricePerNight"`
	Description   string          `json:"description,omitempty"`
	Facilities    string          `json:"hotelFacilities,omitempty"`
	PhoneNumber   string          `json:"phoneNumber,omitempty"`
	WebsiteURL    string          `json:"hotelWebsiteUrl,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// HotelFilter narrows a hotel search. Nil bounds are ignored.
type HotelFilter struct {
	Location string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

type Attraction struct {
	ID          string    `json:"attractionId"`
	HotelID     string    `json:"hotelId"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Distance    float64   `json:"distance"`
	CreatedAt   time.Time `json:"createdAt"`
}
