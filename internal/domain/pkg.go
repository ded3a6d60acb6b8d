package domain

// Package is a priced bundle of work offered to clients. Popular is a
// display flag only; nothing enforces that at most one package carries it.
type Package struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       string   `json:"price"`
	Duration    string   `json:"duration"`
	Features    []string `json:"features"`
	Popular     bool     `json:"popular"`
}

func (p Package) EntityID() string { return p.ID }
