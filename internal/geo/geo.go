package geo

import (
	"errors"
	"os"

	"github.com/kelvins/geocoder"
)

// Permission mirrors the device geolocation permission states.
type Permission string

const (
	PermissionPrompt  Permission = "prompt"
	PermissionGranted Permission = "granted"
	PermissionDenied  Permission = "denied"
)

// Coordinates is a device location. Present only once permission is granted.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Resolver turns a free-text address into coordinates for clients that
// cannot report a device position. Without an API key the capability is
// simply unavailable, which downgrades to a denied permission state.
type Resolver struct {
	apiKey string
}

func NewResolver() *Resolver {
	return &Resolver{apiKey: os.Getenv("GEOCODER_API_KEY")}
}

func (r *Resolver) Available() bool {
	return r.apiKey != ""
}

func (r *Resolver) Resolve(address string) (Coordinates, error) {
	if !r.Available() {
		return Coordinates{}, errors.New("geocoding is not configured")
	}

	geocoder.ApiKey = r.apiKey

	location, err := geocoder.Geocoding(geocoder.Address{Street: address})
	if err != nil {
		return Coordinates{}, err
	}

	return Coordinates{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}, nil
}
