package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range ApplicationStatuses {
		assert.True(t, s.Valid(), string(s))
	}
	assert.False(t, ApplicationStatus("hired").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestApplicationStatusDisplayClass(t *testing.T) {
	assert.Equal(t, "status-pending", ApplicationStatusPending.DisplayClass())
	assert.Equal(t, "status-accepted", ApplicationStatusAccepted.DisplayClass())
}

func TestSalaryRange(t *testing.T) {
	min, max := 50000.0, 90000.0

	job := Job{SalaryCurrency: "USD"}
	assert.Equal(t, "Not specified", job.SalaryRange())

	job.SalaryMin = &min
	assert.Equal(t, "USD 50000+", job.SalaryRange())

	job.SalaryMin = nil
	job.SalaryMax = &max
	assert.Equal(t, "Up to USD 90000", job.SalaryRange())

	job.SalaryMin = &min
	assert.Equal(t, "USD 50000 - 90000", job.SalaryRange())
}

func TestRoleHelpers(t *testing.T) {
	assert.True(t, (&User{Role: RoleJobSeeker}).IsJobSeeker())
	assert.True(t, (&User{Role: RoleEmployer}).IsEmployer())
	assert.True(t, (&User{Role: RoleAdmin}).IsAdmin())
	assert.False(t, (&User{Role: RoleEmployer}).IsJobSeeker())
}
