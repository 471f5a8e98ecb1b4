package domain

// The Thai administrative hierarchy has three levels: province, amphure
// (district) and tambon (sub-district). Amphure and tambon identifiers are
// only meaningful together with their parent identifiers - amphure ids are
// not globally unique - so the lookups lower in the hierarchy carry the
// parent keys explicitly.

// Province is a top-level administrative region.
type Province struct {
	// ID is the stable province identifier.
	ID int `json:"id"`

	// NameTh is the Thai name.
	NameTh string `json:"name_th"`

	// NameEn is the English name.
	NameEn string `json:"name_en"`
}

// Amphure is a district within a province. Its ID is unique only within
// the parent province.
type Amphure struct {
	ID     int    `json:"id"`
	NameTh string `json:"name_th"`
	NameEn string `json:"name_en"`

	// ProvinceID is the parent province, when the service includes it.
	ProvinceID int `json:"province_id,omitempty"`
}

// Tambon is a sub-district within an amphure.
type Tambon struct {
	ID     int    `json:"id"`
	NameTh string `json:"name_th"`
	NameEn string `json:"name_en"`

	// ZipCode is the postal code, when the service includes it.
	ZipCode int `json:"zip_code,omitempty"`

	// AmphureID and ProvinceID are the parent keys, when included.
	AmphureID  int `json:"amphure_id,omitempty"`
	ProvinceID int `json:"province_id,omitempty"`
}

// Location is a fully resolved province/amphure/tambon triple, as returned
// by zip code lookups.
type Location struct {
	Province Province `json:"province"`
	Amphure  Amphure  `json:"amphure"`
	Tambon   Tambon   `json:"tambon"`
}
