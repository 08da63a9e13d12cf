package config

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"

	// MySQL server error numbers the connector recovers from.
	errAccessDenied  = 1045
	errBadDatabase   = 1049
	defaultRetryWait = 3 * time.Second
)

// Credentials describes how to reach the journal database.
type Credentials struct {
	Driver      string
	Host        string
	Port        string
	Database    string
	Username    string
	Password    string
	Path        string
	AutoMigrate bool
}

// LoadCredentials reads the database settings from the environment.
// Call godotenv.Load first to pick up a credentials file.
func LoadCredentials() Credentials {
	creds := Credentials{
		Driver:      strings.ToLower(strings.TrimSpace(os.Getenv("DB_DRIVER"))),
		Host:        os.Getenv("DB_HOST"),
		Port:        os.Getenv("DB_PORT"),
		Database:    os.Getenv("DB_DATABASE"),
		Username:    os.Getenv("DB_USERNAME"),
		Password:    os.Getenv("DB_PASSWORD"),
		Path:        os.Getenv("DB_PATH"),
		AutoMigrate: strings.ToLower(os.Getenv("DB_AUTO_MIGRATE")) == "true",
	}
	if creds.Driver == "" {
		creds.Driver = DriverMySQL
	}
	if creds.Host == "" {
		creds.Host = "localhost"
	}
	if creds.Port == "" {
		creds.Port = "3306"
	}
	if creds.Path == "" {
		creds.Path = "journal.db"
	}
	return creds
}

// DSN formats the MySQL data source name.
func (c Credentials) DSN() string {
	cfg := mysql.NewConfig()
	cfg.User = c.Username
	cfg.Passwd = c.Password
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, c.Port)
	cfg.DBName = c.Database
	cfg.ParseTime = true
	cfg.Loc = time.Local
	cfg.Params = map[string]string{"charset": "utf8mb4"}
	return cfg.FormatDSN()
}

// Print writes the settings in use, with the password left blank.
func (c Credentials) Print(w io.Writer) {
	if c.Driver == DriverSQLite {
		fmt.Fprintf(w, "driver: %s\npath: %s\n\n", c.Driver, c.Path)
		return
	}
	fmt.Fprintf(w, "driver: %s\nhost: %s\nport: %s\ndatabase: %s\nuser: %s\npassword: \n\n",
		c.Driver, c.Host, c.Port, c.Database, c.Username)
}

// PasswordPrompter reads a password without echoing it.
type PasswordPrompter func(prompt string) (string, error)

// Connector retries the initial connection until it succeeds or fails for a
// reason retrying cannot fix.
type Connector struct {
	Load      func() Credentials
	Open      func(Credentials) (*gorm.DB, error)
	Prompt    PasswordPrompter
	Out       io.Writer
	RetryWait time.Duration
	Sleep     func(time.Duration)
}

// NewConnector returns a connector reading credentials from the environment.
func NewConnector(prompt PasswordPrompter, out io.Writer) *Connector {
	wait := defaultRetryWait
	if secs, err := strconv.Atoi(os.Getenv("DB_RETRY_INTERVAL")); err == nil && secs >= 0 {
		wait = time.Duration(secs) * time.Second
	}
	return &Connector{
		Load:      LoadCredentials,
		Open:      Open,
		Prompt:    prompt,
		Out:       out,
		RetryWait: wait,
		Sleep:     time.Sleep,
	}
}

type connectFailure int

const (
	connectFatal connectFailure = iota
	connectAccessDenied
	connectUnknownDatabase
)

func classifyConnectError(err error) connectFailure {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case errAccessDenied:
			return connectAccessDenied
		case errBadDatabase:
			return connectUnknownDatabase
		}
	}
	return connectFatal
}

// Connect loops until a connection is established. Bad credentials re-prompt
// for the password and a missing database is retried after RetryWait; any
// other failure is returned.
func (c *Connector) Connect() (*gorm.DB, error) {
	creds := c.Load()
	for {
		if creds.Driver != DriverSQLite && creds.Password == "" && c.Prompt != nil {
			password, err := c.Prompt("database password ? :")
			if err != nil {
				return nil, fmt.Errorf("read password: %w", err)
			}
			creds.Password = password
		}

		creds.Print(c.Out)
		fmt.Fprintln(c.Out, "Connecting to database...")
		db, err := c.Open(creds)
		if err == nil {
			fmt.Fprintln(c.Out, "connection established.")
			return db, nil
		}
		fmt.Fprintln(c.Out, "connection failed.")

		switch classifyConnectError(err) {
		case connectAccessDenied:
			if c.Prompt == nil {
				return nil, fmt.Errorf("access denied and no password prompt available: %w", err)
			}
			fmt.Fprint(c.Out, "Something is wrong with your user name or password\nTry Again\n\n")
			creds.Password = ""
		case connectUnknownDatabase:
			fmt.Fprintf(c.Out, "Database %q does not exist\n\n", creds.Database)
			if c.Sleep != nil {
				c.Sleep(c.RetryWait)
			}
		default:
			return nil, fmt.Errorf("connect to database: %w", err)
		}
	}
}
