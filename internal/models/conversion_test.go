package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConversionStatusValues(t *testing.T) {
	// The status strings are part of the response contract.
	assert.Equal(t, "success", string(StatusSuccess))
	assert.Equal(t, "failure", string(StatusFailure))
}
