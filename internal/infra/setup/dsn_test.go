package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMysqlDSN(t *testing.T) {
	dsn := mysqlDSN(DBConfig{Host: "db", User: "app", Password: "p@ss", Name: "catalog"})

	assert.Contains(t, dsn, "app:p@ss@tcp(db:3306)/catalog?")
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "charset=utf8mb4")
}

func TestPostgresDSN(t *testing.T) {
	dsn := postgresDSN(DBConfig{Host: "pg", Port: "6543", User: "app", Password: "secret", Name: "catalog"})

	assert.Equal(t, "host=pg user=app password=secret dbname=catalog port=6543 sslmode=disable", dsn)
}
