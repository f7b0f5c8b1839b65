// geo.go - Best-effort IP geolocation with timezone fallback
package main

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// GeoInfo is the location enrichment attached to a visitor profile.
type GeoInfo struct {
	Country string `json:"country"`
	City    string `json:"city"`
	Region  string `json:"region"`
	ISP     string `json:"isp"`
}

var geoClient = &http.Client{Timeout: 4 * time.Second}

// geoBaseURL is swapped out in tests.
var geoBaseURL = "https://ipapi.co"

// lookupGeo resolves a client IP via the public ipapi.co endpoint. One
// attempt, no retries. Any failure (network, non-2xx, parse) falls back
// to the static timezone table using the client-reported IANA timezone.
func lookupGeo(ip, timezone string) GeoInfo {
	info, err := fetchGeo(ip)
	if err != nil {
		return geoFromTimezone(timezone)
	}
	return info
}

func fetchGeo(ip string) (GeoInfo, error) {
	resp, err := geoClient.Get(fmt.Sprintf("%s/%s/json/", geoBaseURL, ip))
	if err != nil {
		return GeoInfo{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return GeoInfo{}, fmt.Errorf("geolocation lookup returned %d", resp.StatusCode)
	}

	var payload struct {
		CountryName string `json:"country_name"`
		CountryCode string `json:"country_code"`
		City        string `json:"city"`
		Region      string `json:"region"`
		Org         string `json:"org"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return GeoInfo{}, err
	}

	info := GeoInfo{
		Country: payload.CountryName,
		City:    payload.City,
		Region:  payload.Region,
		ISP:     payload.Org,
	}
	if info.Country == "" {
		info.Country = payload.CountryCode
	}
	if info.Country == "" {
		info.Country = "Unknown"
	}
	if info.City == "" {
		info.City = "Unknown"
	}
	if info.Region == "" {
		info.Region = "Unknown"
	}
	if info.ISP == "" {
		info.ISP = "Unknown"
	}
	return info, nil
}

// geoFromTimezone maps an IANA timezone to a coarse country/region pair,
// defaulting to Unknown for anything not in the table.
func geoFromTimezone(timezone string) GeoInfo {
	loc, ok := tzLocations[timezone]
	if !ok {
		loc = tzLocation{"Unknown", "Unknown"}
	}
	return GeoInfo{Country: loc.country, Region: loc.region, City: "Unknown", ISP: "Unknown"}
}

type tzLocation struct {
	country string
	region  string
}

var tzLocations = map[string]tzLocation{
	"America/New_York":               {"United States", "New York"},
	"America/Chicago":                {"United States", "Illinois"},
	"America/Denver":                 {"United States", "Colorado"},
	"America/Los_Angeles":            {"United States", "California"},
	"Europe/London":                  {"United Kingdom", "England"},
	"Europe/Paris":                   {"France", "Île-de-France"},
	"Europe/Berlin":                  {"Germany", "Berlin"},
	"Europe/Rome":                    {"Italy", "Lazio"},
	"Europe/Madrid":                  {"Spain", "Madrid"},
	"Europe/Amsterdam":               {"Netherlands", "North Holland"},
	"Europe/Brussels":                {"Belgium", "Brussels"},
	"Europe/Zurich":                  {"Switzerland", "Zurich"},
	"Europe/Vienna":                  {"Austria", "Vienna"},
	"Europe/Stockholm":               {"Sweden", "Stockholm"},
	"Europe/Oslo":                    {"Norway", "Oslo"},
	"Europe/Copenhagen":              {"Denmark", "Copenhagen"},
	"Europe/Helsinki":                {"Finland", "Uusimaa"},
	"Europe/Warsaw":                  {"Poland", "Masovian"},
	"Europe/Prague":                  {"Czech Republic", "Prague"},
	"Europe/Budapest":                {"Hungary", "Budapest"},
	"Europe/Bucharest":               {"Romania", "Bucharest"},
	"Europe/Sofia":                   {"Bulgaria", "Sofia"},
	"Europe/Athens":                  {"Greece", "Attica"},
	"Europe/Lisbon":                  {"Portugal", "Lisbon"},
	"Europe/Dublin":                  {"Ireland", "Dublin"},
	"Asia/Tokyo":                     {"Japan", "Tokyo"},
	"Asia/Shanghai":                  {"China", "Shanghai"},
	"Asia/Seoul":                     {"South Korea", "Seoul"},
	"Asia/Singapore":                 {"Singapore", "Singapore"},
	"Asia/Hong_Kong":                 {"Hong Kong", "Hong Kong"},
	"Asia/Taipei":                    {"Taiwan", "Taipei"},
	"Asia/Bangkok":                   {"Thailand", "Bangkok"},
	"Asia/Jakarta":                   {"Indonesia", "Jakarta"},
	"Asia/Kuala_Lumpur":              {"Malaysia", "Kuala Lumpur"},
	"Asia/Manila":                    {"Philippines", "Manila"},
	"Asia/Ho_Chi_Minh":               {"Vietnam", "Ho Chi Minh City"},
	"Asia/Kolkata":                   {"India", "West Bengal"},
	"Asia/Dubai":                     {"United Arab Emirates", "Dubai"},
	"Asia/Riyadh":                    {"Saudi Arabia", "Riyadh"},
	"Asia/Tehran":                    {"Iran", "Tehran"},
	"Asia/Jerusalem":                 {"Israel", "Jerusalem"},
	"Asia/Istanbul":                  {"Turkey", "Istanbul"},
	"Africa/Cairo":                   {"Egypt", "Cairo"},
	"Africa/Johannesburg":            {"South Africa", "Gauteng"},
	"Africa/Lagos":                   {"Nigeria", "Lagos"},
	"Africa/Casablanca":              {"Morocco", "Casablanca"},
	"Africa/Tunis":                   {"Tunisia", "Tunis"},
	"Africa/Algiers":                 {"Algeria", "Algiers"},
	"Australia/Sydney":               {"Australia", "New South Wales"},
	"Australia/Melbourne":            {"Australia", "Victoria"},
	"Australia/Perth":                {"Australia", "Western Australia"},
	"Pacific/Auckland":               {"New Zealand", "Auckland"},
	"America/Toronto":                {"Canada", "Ontario"},
	"America/Vancouver":              {"Canada", "British Columbia"},
	"America/Montreal":               {"Canada", "Quebec"},
	"America/Sao_Paulo":              {"Brazil", "São Paulo"},
	"America/Argentina/Buenos_Aires": {"Argentina", "Buenos Aires"},
	"America/Mexico_City":            {"Mexico", "Mexico City"},
	"America/Bogota":                 {"Colombia", "Bogotá"},
	"America/Lima":                   {"Peru", "Lima"},
	"America/Santiago":               {"Chile", "Santiago"},
	"America/Caracas":                {"Venezuela", "Caracas"},
}
