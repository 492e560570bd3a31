package common

// ProviderConfig stores configuration options for opening resource providers.
type ProviderConfig struct {
	Prefix  string // Directory inside the source that holds the <table>.csv resources
	Verbose bool   // Enable detailed logging
}

// ColumnTypes maps a table name to its column type tags in column order.
type ColumnTypes map[string][]ColumnType
