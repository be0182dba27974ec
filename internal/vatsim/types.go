// Package vatsim fetches and models the VATSIM network data feed
package vatsim

// Status represents the status document listing the available data endpoints
type Status struct {
	Data  StatusData `json:"data"`
	User  []string   `json:"user"`
	Metar []string   `json:"metar"`
}

// StatusData holds the endpoint URL lists from the status document
type StatusData struct {
	V3              []string `json:"v3"`
	Transceivers    []string `json:"transceivers"`
	Servers         []string `json:"servers"`
	ServersSweatbox []string `json:"servers_sweatbox"`
	ServersAll      []string `json:"servers_all"`
}

// General represents feed-wide metadata from the data document
type General struct {
	Version          int    `json:"version"`
	Reload           int    `json:"reload"`
	Update           string `json:"update"`
	UpdateTimestamp  string `json:"update_timestamp"`
	ConnectedClients int    `json:"connected_clients"`
	UniqueUsers      int    `json:"unique_users"`
}

// FlightPlan represents a pilot's filed flight plan
type FlightPlan struct {
	FlightRules         string `json:"flight_rules"`
	Aircraft            string `json:"aircraft"`
	AircraftFAA         string `json:"aircraft_faa"`
	AircraftShort       string `json:"aircraft_short"`
	Departure           string `json:"departure"`
	Arrival             string `json:"arrival"`
	Alternate           string `json:"alternate"`
	CruiseTAS           string `json:"cruise_tas"`
	Altitude            string `json:"altitude"`
	Deptime             string `json:"deptime"`
	EnrouteTime         string `json:"enroute_time"`
	FuelTime            string `json:"fuel_time"`
	Remarks             string `json:"remarks"`
	Route               string `json:"route"`
	RevisionID          int    `json:"revision_id"`
	AssignedTransponder string `json:"assigned_transponder"`
}

// Pilot represents a connected pilot
type Pilot struct {
	CID         int         `json:"cid"`
	Name        string      `json:"name"`
	Callsign    string      `json:"callsign"`
	Server      string      `json:"server"`
	PilotRating int         `json:"pilot_rating"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	Altitude    int         `json:"altitude"`
	Groundspeed int         `json:"groundspeed"`
	Transponder string      `json:"transponder"`
	Heading     int         `json:"heading"`
	QNHinHg     float64     `json:"qnh_i_hg"`
	QNHmb       int         `json:"qnh_mb"`
	FlightPlan  *FlightPlan `json:"flight_plan"`
	LogonTime   string      `json:"logon_time"`
	LastUpdated string      `json:"last_updated"`
}

// Controller represents a connected controller
type Controller struct {
	CID         int      `json:"cid"`
	Name        string   `json:"name"`
	Callsign    string   `json:"callsign"`
	Frequency   string   `json:"frequency"`
	Facility    int      `json:"facility"`
	Rating      int      `json:"rating"`
	Server      string   `json:"server"`
	VisualRange int      `json:"visual_range"`
	TextATIS    []string `json:"text_atis"`
	LastUpdated string   `json:"last_updated"`
	LogonTime   string   `json:"logon_time"`
}

// ReferenceItem represents one entry of the facility or rating lookup tables
type ReferenceItem struct {
	ID    int    `json:"id"`
	Short string `json:"short"`
	Long  string `json:"long"`
}

// Data represents the full v3 data document
type Data struct {
	General     General         `json:"general"`
	Pilots      []Pilot         `json:"pilots"`
	Controllers []Controller    `json:"controllers"`
	Facilities  []ReferenceItem `json:"facilities"`
	Ratings     []ReferenceItem `json:"ratings"`
}
