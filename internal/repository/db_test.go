package repository

import (
	"strings"
	"testing"
	"time"
)

func TestParseDatabaseURL(t *testing.T) {
	tests := []struct {
		name      string
		url       string
		dialect   Dialect
		driver    string
		dsnPrefix string
		wantErr   bool
	}{
		{"relative sqlite", "sqlite:///database.db", DialectSQLite, "sqlite", "database.db?", false},
		{"absolute sqlite", "sqlite:////var/lib/app.db", DialectSQLite, "sqlite", "/var/lib/app.db?", false},
		{"memory sqlite", "sqlite://:memory:", DialectSQLite, "sqlite", ":memory:?", false},
		{"postgres alias", "postgres://u:p@db:5432/app", DialectPostgres, "pgx", "postgresql://u:p@db:5432/app", false},
		{"postgresql", "postgresql://u:p@db/app", DialectPostgres, "pgx", "postgresql://u:p@db/app", false},
		{"mysql url", "mysql://u:p@db:3306/app", DialectMySQL, "mysql", "u:p@tcp(db:3306)/app", false},
		{"mysql dsn", "u:p@tcp(db:3306)/app", DialectMySQL, "mysql", "u:p@tcp(db:3306)/app", false},
		{"unknown scheme", "oracle://db/app", "", "", "", true},
		{"garbage", "not a url", "", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dialect, driver, dsn, err := parseDatabaseURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parseDatabaseURL() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if dialect != tt.dialect || driver != tt.driver {
				t.Errorf("parseDatabaseURL() = (%s, %s), want (%s, %s)", dialect, driver, tt.dialect, tt.driver)
			}
			if !strings.HasPrefix(dsn, tt.dsnPrefix) {
				t.Errorf("dsn = %q, want prefix %q", dsn, tt.dsnPrefix)
			}
		})
	}
}

func TestRebind(t *testing.T) {
	pg := &DB{dialect: DialectPostgres}
	got := pg.rebind(`SELECT id FROM users WHERE email = ? AND id = ?`)
	want := `SELECT id FROM users WHERE email = $1 AND id = $2`
	if got != want {
		t.Errorf("rebind() = %q, want %q", got, want)
	}

	lite := &DB{dialect: DialectSQLite}
	q := `SELECT 1 WHERE ? = ?`
	if lite.rebind(q) != q {
		t.Error("sqlite queries should be left untouched")
	}
}

func TestNullTimeScan(t *testing.T) {
	want := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name  string
		src   any
		valid bool
	}{
		{"time", want, true},
		{"rfc3339", "2024-01-02T03:04:05Z", true},
		{"sqlite text", "2024-01-02 03:04:05", true},
		{"sqlite offset", []byte("2024-01-02 03:04:05+00:00"), true},
		{"go string", "2024-01-02 03:04:05 +0000 UTC", true},
		{"null", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var nt nullTime
			if err := nt.Scan(tt.src); err != nil {
				t.Fatalf("Scan() error: %v", err)
			}
			if nt.Valid != tt.valid {
				t.Fatalf("Valid = %v, want %v", nt.Valid, tt.valid)
			}
			if tt.valid && !nt.Time.Equal(want) {
				t.Errorf("Time = %v, want %v", nt.Time, want)
			}
		})
	}

	var nt nullTime
	if err := nt.Scan("yesterday"); err == nil {
		t.Error("Scan() expected error for unparseable text")
	}
}
