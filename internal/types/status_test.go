package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReviewStatusValidate(t *testing.T) {
	for _, status := range AllReviewStatuses() {
		assert.NoError(t, status.Validate(), "status: %s", status)
	}

	assert.Error(t, ReviewStatus("").Validate())
	assert.Error(t, ReviewStatus("Graduated").Validate())
	// The set is closed and case-sensitive.
	assert.Error(t, ReviewStatus("waitlist").Validate())
}

func TestAllReviewStatusesCount(t *testing.T) {
	assert.Len(t, AllReviewStatuses(), 11)
}

func TestRoleValidate(t *testing.T) {
	for _, role := range []Role{RoleFullControl, RoleEditLimited, RoleReadOnly} {
		assert.NoError(t, role.Validate(), "role: %s", role)
	}
	assert.Error(t, Role("").Validate())
	assert.Error(t, Role("superuser").Validate())
}
