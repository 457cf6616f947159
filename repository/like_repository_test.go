package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestIsDuplicateEntry(t *testing.T) {
	duplicate := &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'user-1-album-1' for key 'uq_user_album'"}
	assert.True(t, isDuplicateEntry(duplicate))
	assert.True(t, isDuplicateEntry(fmt.Errorf("exec: %w", duplicate)))

	foreignKey := &mysql.MySQLError{Number: 1452}
	assert.False(t, isDuplicateEntry(foreignKey))
	assert.False(t, isDuplicateEntry(errors.New("connection refused")))
	assert.False(t, isDuplicateEntry(nil))
}
