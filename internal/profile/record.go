package profile

// Record is the assembled physician profile. Every field has a defined
// empty value; extraction misses leave fields empty rather than failing.
type Record struct {
	Name        string `json:"name"`
	Credentials string `json:"credentials"`
	Specialty   string `json:"specialty"`

	Affiliations  string `json:"affiliations"`
	Languages     string `json:"languages"`
	Gender        string `json:"gender"`
	AcademicTitle string `json:"academic_title"`
	Background    string `json:"background"`

	Titles         []string `json:"titles"`
	Education      []string `json:"education"`
	Certifications []string `json:"certifications"`
	Memberships    []string `json:"memberships"`

	Locations []Location `json:"locations"`
}

// Location is one clinic/office entry. A location with all four fields
// empty is never emitted.
type Location struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Phone   string `json:"phone"`
	Fax     string `json:"fax"`
}

// IsEmpty reports whether the location carries no data at all.
func (l Location) IsEmpty() bool {
	return l.Name == "" && l.Address == "" && l.Phone == "" && l.Fax == ""
}
