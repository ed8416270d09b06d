package author

// Author represents the core Author entity as persisted in the authors
// collection.
type Author struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Bio         string `json:"bio"`
	BirthYear   *int   `json:"birth_year"`
	Nationality string `json:"nationality"`
	CreatedAt   string `json:"created_at"`
}

func (a Author) RecordID() int { return a.ID }
