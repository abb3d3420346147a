package model

// Book is a catalog record as returned by the Koha API, normalized
// into the fields the handlers care about.
type Book struct {
	Title     string
	Author    string
	ISBN      string
	Publisher string
	Year      string
	BiblioID  string
	Quantity  int
}

// User is a library patron able to log in to the assistant.
type User struct {
	ID           string
	Cardnumber   string
	Username     string
	PasswordHash string
}
