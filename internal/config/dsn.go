package config

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
)

func databaseURL(db DatabaseConfig) string {
	// JoinHostPort brackets IPv6 hosts.
	hostPort := net.JoinHostPort(db.Host, strconv.Itoa(db.Port))

	return fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=%s",
		url.QueryEscape(db.User),
		url.QueryEscape(db.Password),
		hostPort,
		db.Name,
		db.SSLMode,
	)
}
