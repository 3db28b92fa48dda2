package config

// Default paths for databases
const (
	// DefaultDatabasePath is the default path for the main application database
	DefaultDatabasePath = "./abecedary.db"

	// DefaultServerURL is where the practice client looks for the API
	DefaultServerURL = "http://127.0.0.1:8188"
)
