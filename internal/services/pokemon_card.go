package services

// PokemonCard is the provider-neutral raw record for one Pokémon card. Both
// TCGdex and pokemontcg.io responses convert into it.
type PokemonCard struct {
	Images    *PokemonImages
	HP        *int
	ID        string
	Name      string
	Category  string // "Pokemon", "Trainer" or "Energy"
	Stage     string // "Basic", "Stage1", "Stage2", "VMAX", ...
	Supertype string
	Types     []string
	Subtypes  []string
	Attacks   []PokemonAttack
}

type PokemonImages struct {
	Small string
	Large string
}

// PokemonAttack keeps the damage text as printed, e.g. "30", "50+" or "20×".
type PokemonAttack struct {
	Name   string
	Damage string
}
