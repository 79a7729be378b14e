package pexels

type searchResponse struct {
	Photos []photo `json:"photos"`
}

type photo struct {
	ID           int64       `json:"id"`
	Photographer string      `json:"photographer"`
	Src          photoSource `json:"src"`
}

type photoSource struct {
	Large2x string `json:"large2x"`
}
