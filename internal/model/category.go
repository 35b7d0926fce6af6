package model

// Category identifies which failure-wrapping rule applies to a file.
// It is derived from path-keyword heuristics, not from file content.
type Category string

const (
	// CategoryPersistence covers save/persistence paths.
	CategoryPersistence Category = "persistence"
	// CategoryParse covers parse/parser paths.
	CategoryParse Category = "parse"
	// CategoryValidation covers paths containing "valid".
	CategoryValidation Category = "validation"
	// CategoryMusic covers music generation paths.
	CategoryMusic Category = "music"
	// CategoryAudio covers tts/speech paths.
	CategoryAudio Category = "audio"
	// CategoryImage covers image generation paths.
	CategoryImage Category = "image"
	// CategoryNetwork covers network/api paths.
	CategoryNetwork Category = "network"
	// CategoryGameState is the catch-all when no keyword matches.
	CategoryGameState Category = "gamestate"
)
