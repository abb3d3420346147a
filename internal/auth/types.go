package auth

// --- UseCase Inputs ---

type LoginInput struct {
	Cardnumber string
	Password   string
}

// --- UseCase Outputs ---

type LoginOutput struct {
	Token      string
	Cardnumber string
	Username   string
}
