package cmd

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	// JWTSecret signs access tokens. TokenTTLMinutes controls their
	// lifetime; empty means 60.
	JWTSecret       string
	TokenTTLMinutes string

	// AdminStatusPolicy is "strict" (default) or "free". Under "free"
	// admins may move orders to any non-terminal state without walking
	// the preparation chain.
	AdminStatusPolicy string

	// PendingAlertMinutes is how long an order may stay PENDIENTE before
	// the background monitor warns about it; empty means 30.
	PendingAlertMinutes string
}
