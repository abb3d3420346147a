package koha

// Biblio is a bibliographic record as returned by the Koha REST API.
type Biblio struct {
	BiblioID      any    `json:"biblio_id"`
	Title         string `json:"title"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	Publisher     string `json:"publisher"`
	CopyrightDate string `json:"copyright_date"`
}

// Item is a physical copy attached to a biblio record.
type Item struct {
	ItemID       any    `json:"item_id"`
	HomeLibrary  string `json:"home_library_id"`
	NotForLoan   int    `json:"not_for_loan_status"`
	LostStatus   int    `json:"lost_status"`
	DamagedState int    `json:"damaged_status"`
}
