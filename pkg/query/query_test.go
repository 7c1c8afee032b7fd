package query_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkwell-app/inkwell/pkg/query"
)

func TestUUIDList(t *testing.T) {
	valid := "0198c5e4-0000-7000-8000-000000000001"

	res := query.UUIDList([]string{valid, "not-a-uuid", "", "  " + valid + "  "})

	assert.Equal(t, []string{valid, valid}, res)
}

func TestUUIDListAllMalformed(t *testing.T) {
	assert.Nil(t, query.UUIDList([]string{"x", "123", ""}))
}

func TestStringSlice(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, query.StringSlice(" a , b ,"))
	assert.Nil(t, query.StringSlice(""))
}
