package validator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("alice@example.com"))
	assert.NoError(t, Email("first.last+tag@sub.example.co"))

	assert.Error(t, Email(""))
	assert.Error(t, Email("not-an-email"))
	assert.Error(t, Email("missing@tld"))
	assert.Error(t, Email("@example.com"))
	assert.Error(t, Email(strings.Repeat("a", 250)+"@example.com"))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("longenough"))

	assert.Error(t, Password(""))
	assert.Error(t, Password("short"))
	assert.Error(t, Password(strings.Repeat("x", 129)))
}

func TestName(t *testing.T) {
	assert.NoError(t, Name("firstname", "Alice"))
	assert.NoError(t, Name("username", "alice_92"))

	assert.Error(t, Name("firstname", ""))
	assert.Error(t, Name("firstname", strings.Repeat("a", 51)))
	assert.Error(t, Name("firstname", "ali\x00ce"))
}
