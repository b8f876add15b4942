package db

// Config holds the connection settings for the active dialect. Pool fields
// are optional; zero values leave the driver defaults in place.
type Config struct {
	Type            string
	Host            string
	Port            string
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxIdleConn     int
	MaxOpenConn     int
	ConnMaxLifetime int
}
