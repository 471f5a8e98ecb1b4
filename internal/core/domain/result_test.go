package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFailure(t *testing.T) {
	result := Failure(120*time.Millisecond, "%v: limit must be positive", ErrInvalidInput)

	assert.False(t, result.Success)
	assert.Equal(t, "invalid input: limit must be positive", result.Error)
	assert.Equal(t, 120*time.Millisecond, result.Elapsed)
	assert.Nil(t, result.Data)
}

func TestResultRecords(t *testing.T) {
	records := []map[string]any{{"test": float64(1)}}

	result := Result{Success: true, Data: records}
	assert.Equal(t, records, result.Records())

	// Non-record payloads yield nil rather than panicking.
	assert.Nil(t, Result{Success: true, Data: "nope"}.Records())
	assert.Nil(t, Result{Success: true}.Records())
}

func TestResultTypedAccessors(t *testing.T) {
	provinces := []Province{{ID: 1, NameTh: "กรุงเทพมหานคร", NameEn: "Bangkok"}}
	amphures := []Amphure{{ID: 1001, NameEn: "Phra Nakhon", ProvinceID: 1}}
	tambons := []Tambon{{ID: 100101, NameEn: "Phra Borom Maha Ratchawang", AmphureID: 1001}}
	locations := []Location{{Tambon: Tambon{ZipCode: 10100}}}

	assert.Equal(t, provinces, Result{Data: provinces}.Provinces())
	assert.Equal(t, amphures, Result{Data: amphures}.Amphures())
	assert.Equal(t, tambons, Result{Data: tambons}.Tambons())
	assert.Equal(t, locations, Result{Data: locations}.Locations())

	// Accessors are strict about the payload type.
	assert.Nil(t, Result{Data: provinces}.Amphures())
	assert.Nil(t, Result{Data: amphures}.Provinces())
	assert.Nil(t, Result{Data: tambons}.Locations())
}

func TestSuccessImpliesNoError(t *testing.T) {
	// Failure never produces a success, and its error is always set.
	result := Failure(0, "boom")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Error)
}
