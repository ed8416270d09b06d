package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateAuthorRequest - POST /api/authors
type CreateAuthorRequest struct {
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	BirthYear   *int   `json:"birth_year"`
	Nationality string `json:"nationality"`
}

func (req CreateAuthorRequest) Validate() error {
	return validation.ValidateStruct(&req,
		validation.Field(&req.Name, validation.Required),
	)
}

// ToEntity builds the Author record. The id is assigned inside the
// insert transaction. Bio and nationality default to the empty string,
// birth_year stays null when absent.
func (req *CreateAuthorRequest) ToEntity(createdAt string) Author {
	return Author{
		Name:        req.Name,
		Bio:         req.Bio,
		BirthYear:   req.BirthYear,
		Nationality: req.Nationality,
		CreatedAt:   createdAt,
	}
}
