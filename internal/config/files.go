package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
)

// SQLLogin mirrors the sql_login.json file the operator maintains next to
// the binary.
type SQLLogin struct {
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database"`
	User     string `json:"user"`
	Password string `json:"password"`
}

// LoadSQLLogin reads and validates the database login file.
func LoadSQLLogin(path string) (SQLLogin, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SQLLogin{}, fmt.Errorf("read sql login file: %w", err)
	}

	var login SQLLogin
	if err := json.Unmarshal(data, &login); err != nil {
		return SQLLogin{}, fmt.Errorf("parse sql login file %s: %w", path, err)
	}

	if login.Host == "" || login.Database == "" || login.User == "" {
		return SQLLogin{}, fmt.Errorf("sql login file %s: host, database and user are required", path)
	}
	if login.Port == 0 {
		login.Port = 5432
	}
	return login, nil
}

// DSN renders the login as a postgres connection URL.
func (l SQLLogin) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(l.User, l.Password),
		Host:   fmt.Sprintf("%s:%d", l.Host, l.Port),
		Path:   l.Database,
	}
	return u.String()
}
