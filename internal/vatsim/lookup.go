package vatsim

// UnknownShort is the placeholder for rating or facility ids missing
// from the document's lookup tables.
const UnknownShort = "?"

// RatingShort returns the short name for a controller rating id, or
// UnknownShort when the id is not in the ratings table.
func (d *Data) RatingShort(id int) string {
	for _, item := range d.Ratings {
		if item.ID == id {
			return item.Short
		}
	}
	return UnknownShort
}

// FacilityShort returns the short name for a facility id, or
// UnknownShort when the id is not in the facilities table.
func (d *Data) FacilityShort(id int) string {
	for _, item := range d.Facilities {
		if item.ID == id {
			return item.Short
		}
	}
	return UnknownShort
}
