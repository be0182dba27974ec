package testutil

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vatscope/vatscope/internal/vatsim"
)

// Aircraft type codes commonly filed on the network
var aircraftTypes = []string{
	"A320", "A321", "A319", "A330", "A350", "A388",
	"B738", "B739", "B744", "B752", "B763", "B772", "B77W", "B788", "B789",
	"E170", "E175", "E190", "E195",
	"CRJ2", "CRJ7", "CRJ9",
	"DH8D", "AT76",
	"C172", "C208", "PC12",
}

// Airline callsign prefixes
var callsignPrefixes = []string{
	"AAL", "UAL", "DAL", "SWA", "JBU", "ASA", "FDX", "UPS",
	"BAW", "DLH", "AFR", "KLM", "SAS", "ACA", "QFA",
	"ANA", "JAL", "CPA", "SIA", "UAE", "QTR", "ELY",
}

// Station prefixes for controller callsigns
var stationPrefixes = []string{
	"EGLL", "KJFK", "KLAX", "EDDF", "LFPG", "EHAM", "KSFO", "KORD",
	"LOWW", "EGPH", "KATL", "CYYZ", "YSSY", "RJTT",
}

// Position suffixes for controller callsigns
var positionSuffixes = []string{"DEL", "GND", "TWR", "APP", "DEP", "CTR"}

// Common airport codes for generated flight plans
var airports = []string{
	"EGLL", "KJFK", "KLAX", "EDDF", "LFPG", "EHAM", "KSFO", "KORD",
	"KBOS", "KSEA", "CYVR", "YSSY", "RJTT", "VHHH", "OMDB", "LEMD",
}

// seededRand provides a deterministic random source when needed
var seededRand = rand.New(rand.NewSource(time.Now().UnixNano()))

// StandardRatings returns the controller rating lookup table carried
// by real data documents.
func StandardRatings() []vatsim.ReferenceItem {
	return []vatsim.ReferenceItem{
		{ID: -1, Short: "INAC", Long: "Inactive"},
		{ID: 0, Short: "SUS", Long: "Suspended"},
		{ID: 1, Short: "OBS", Long: "Observer"},
		{ID: 2, Short: "S1", Long: "Tower Trainee"},
		{ID: 3, Short: "S2", Long: "Tower Controller"},
		{ID: 4, Short: "S3", Long: "Senior Student"},
		{ID: 5, Short: "C1", Long: "Enroute Controller"},
		{ID: 7, Short: "C3", Long: "Senior Controller"},
		{ID: 8, Short: "I1", Long: "Instructor"},
		{ID: 10, Short: "I3", Long: "Senior Instructor"},
		{ID: 11, Short: "SUP", Long: "Supervisor"},
		{ID: 12, Short: "ADM", Long: "Administrator"},
	}
}

// StandardFacilities returns the facility lookup table carried by
// real data documents.
func StandardFacilities() []vatsim.ReferenceItem {
	return []vatsim.ReferenceItem{
		{ID: 0, Short: "OBS", Long: "Observer"},
		{ID: 1, Short: "FSS", Long: "Flight Service Station"},
		{ID: 2, Short: "DEL", Long: "Clearance Delivery"},
		{ID: 3, Short: "GND", Long: "Ground"},
		{ID: 4, Short: "TWR", Long: "Tower"},
		{ID: 5, Short: "APP", Long: "Approach/Departure"},
		{ID: 6, Short: "CTR", Long: "Enroute"},
	}
}

// GeneratePilots generates the specified number of random pilots
func GeneratePilots(count int) []vatsim.Pilot {
	pilots := make([]vatsim.Pilot, count)
	for i := 0; i < count; i++ {
		pilots[i] = generateRandomPilot()
	}
	return pilots
}

// GenerateControllers generates the specified number of random controllers
func GenerateControllers(count int) []vatsim.Controller {
	controllers := make([]vatsim.Controller, count)
	for i := 0; i < count; i++ {
		controllers[i] = generateRandomController()
	}
	return controllers
}

// generateRandomPilot creates a single random pilot
func generateRandomPilot() vatsim.Pilot {
	prefix := callsignPrefixes[seededRand.Intn(len(callsignPrefixes))]
	pilot := vatsim.Pilot{
		CID:         randomInt(800000, 1700000),
		Name:        fmt.Sprintf("Test Pilot %d", randomInt(1, 9999)),
		Callsign:    fmt.Sprintf("%s%d", prefix, randomInt(100, 9999)),
		Server:      "AMSTERDAM",
		PilotRating: 1,
		Latitude:    randomFloat(-60.0, 70.0),
		Longitude:   randomFloat(-180.0, 180.0),
		Altitude:    randomInt(1000, 41000),
		Groundspeed: randomInt(120, 520),
		Transponder: fmt.Sprintf("%04d", randomInt(0, 7777)),
		Heading:     randomInt(0, 359),
		QNHinHg:     randomFloat(29.5, 30.4),
		QNHmb:       randomInt(990, 1035),
		LogonTime:   "2024-03-01T10:00:00Z",
		LastUpdated: "2024-03-01T10:05:00Z",
	}
	// most pilots file a plan
	if seededRand.Intn(10) < 7 {
		code := aircraftTypes[seededRand.Intn(len(aircraftTypes))]
		pilot.FlightPlan = &vatsim.FlightPlan{
			FlightRules:   "I",
			Aircraft:      code + "/M-SDE3FGHIM2RWXY/LB1",
			AircraftFAA:   code + "/L",
			AircraftShort: code,
			Departure:     airports[seededRand.Intn(len(airports))],
			Arrival:       airports[seededRand.Intn(len(airports))],
			CruiseTAS:     fmt.Sprintf("%d", randomInt(280, 490)),
			Altitude:      fmt.Sprintf("FL%d", randomInt(180, 410)),
			Route:         "DCT",
		}
	}
	return pilot
}

// generateRandomController creates a single random controller
func generateRandomController() vatsim.Controller {
	station := stationPrefixes[seededRand.Intn(len(stationPrefixes))]
	position := positionSuffixes[seededRand.Intn(len(positionSuffixes))]
	return vatsim.Controller{
		CID:         randomInt(800000, 1700000),
		Name:        fmt.Sprintf("Test Controller %d", randomInt(1, 9999)),
		Callsign:    fmt.Sprintf("%s_%s", station, position),
		Frequency:   fmt.Sprintf("1%d.%d", randomInt(18, 36), randomInt(100, 975)),
		Facility:    randomInt(1, 6),
		Rating:      randomInt(2, 7),
		Server:      "AMSTERDAM",
		VisualRange: randomInt(20, 600),
		LastUpdated: "2024-03-01T10:05:00Z",
		LogonTime:   "2024-03-01T09:00:00Z",
	}
}

// PilotWithCallsign returns a pilot carrying the given callsign
func PilotWithCallsign(callsign string) vatsim.Pilot {
	pilot := generateRandomPilot()
	pilot.Callsign = callsign
	return pilot
}

// PilotWithoutFlightPlan returns a pilot with no filed plan
func PilotWithoutFlightPlan(callsign string) vatsim.Pilot {
	pilot := PilotWithCallsign(callsign)
	pilot.FlightPlan = nil
	return pilot
}

// PilotWithAircraft returns a pilot whose plan carries the given
// FAA and short aircraft codes
func PilotWithAircraft(callsign, faa, short string) vatsim.Pilot {
	pilot := PilotWithCallsign(callsign)
	pilot.FlightPlan = &vatsim.FlightPlan{
		FlightRules:   "I",
		AircraftFAA:   faa,
		AircraftShort: short,
		Departure:     "EGLL",
		Arrival:       "KJFK",
	}
	return pilot
}

// ControllerWithCallsign returns a controller carrying the given callsign
func ControllerWithCallsign(callsign string) vatsim.Controller {
	controller := generateRandomController()
	controller.Callsign = callsign
	return controller
}

// ControllerWithRating returns a controller with a fixed rating id
func ControllerWithRating(callsign string, rating int) vatsim.Controller {
	controller := ControllerWithCallsign(callsign)
	controller.Rating = rating
	return controller
}

// DataWith bundles pilots and controllers into a snapshot carrying
// the standard lookup tables
func DataWith(pilots []vatsim.Pilot, controllers []vatsim.Controller) *vatsim.Data {
	return &vatsim.Data{
		General: vatsim.General{
			Version:          3,
			Reload:           1,
			Update:           "20240301100500",
			UpdateTimestamp:  "2024-03-01T10:05:00Z",
			ConnectedClients: len(pilots) + len(controllers),
			UniqueUsers:      len(pilots) + len(controllers),
		},
		Pilots:      pilots,
		Controllers: controllers,
		Facilities:  StandardFacilities(),
		Ratings:     StandardRatings(),
	}
}

// randomInt returns a random int in [min, max]
func randomInt(min, max int) int {
	return min + seededRand.Intn(max-min+1)
}

// randomFloat returns a random float64 in [min, max)
func randomFloat(min, max float64) float64 {
	return min + seededRand.Float64()*(max-min)
}
