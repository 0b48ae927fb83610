package validation

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestApplyCollectsAllViolations(t *testing.T) {
	err := Apply(context.Background(),
		Required("name", nil, "The name field is required"),
		Required("email", strPtr(""), "The email field is required"),
		Email("email", strPtr(""), "The email must be a valid email address"),
	)

	var verr *Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"The name field is required"}, verr.Fields["name"])
	assert.Equal(t, []string{"The email field is required"}, verr.Fields["email"])
}

func TestApplyPassesWhenAllRulesHold(t *testing.T) {
	err := Apply(context.Background(),
		Required("name", strPtr("Julie"), "required"),
		Email("email", strPtr("julie@example.com"), "invalid"),
	)
	assert.NoError(t, err)
}

func TestApplyPropagatesCheckFailure(t *testing.T) {
	boom := errors.New("connection refused")
	err := Apply(context.Background(),
		Unique("email", "taken", func(context.Context) (bool, error) {
			return false, boom
		}),
	)
	assert.ErrorIs(t, err, boom)
}

func TestRequired(t *testing.T) {
	tests := []struct {
		name string
		val  *string
		ok   bool
	}{
		{"nil fails", nil, false},
		{"blank fails", strPtr("   "), false},
		{"value passes", strPtr("x"), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Required("f", tt.val, "m").Check(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRequiredIfPresentAllowsAbsence(t *testing.T) {
	ok, _ := RequiredIfPresent("f", nil, "m").Check(context.Background())
	assert.True(t, ok)

	ok, _ = RequiredIfPresent("f", strPtr(""), "m").Check(context.Background())
	assert.False(t, ok)
}

func TestEmail(t *testing.T) {
	tests := []struct {
		name string
		val  *string
		ok   bool
	}{
		{"nil passes", nil, true},
		{"empty passes", strPtr(""), true},
		{"valid passes", strPtr("a@b.com"), true},
		{"garbage fails", strPtr("not-an-email"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := Email("email", tt.val, "m").Check(context.Background())
			assert.NoError(t, err)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestOneOf(t *testing.T) {
	allowed := []string{"M", "F"}

	ok, _ := OneOf("gender", strPtr("M"), allowed, "m").Check(context.Background())
	assert.True(t, ok)

	ok, _ = OneOf("gender", strPtr("X"), allowed, "m").Check(context.Background())
	assert.False(t, ok)

	ok, _ = OneOf("gender", nil, allowed, "m").Check(context.Background())
	assert.True(t, ok)
}

func TestLenBounds(t *testing.T) {
	ok, _ := MinLen("password", strPtr("12345"), 6, "m").Check(context.Background())
	assert.False(t, ok)

	ok, _ = MinLen("password", strPtr("123456"), 6, "m").Check(context.Background())
	assert.True(t, ok)

	ok, _ = MaxLen("name", strPtr("abc"), 2, "m").Check(context.Background())
	assert.False(t, ok)

	ok, _ = MaxLen("name", nil, 2, "m").Check(context.Background())
	assert.True(t, ok)
}

func TestBeforeNow(t *testing.T) {
	past := time.Now().AddDate(-30, 0, 0)
	future := time.Now().AddDate(0, 0, 1)

	ok, _ := BeforeNow("birth_date", &past, "m").Check(context.Background())
	assert.True(t, ok)

	ok, _ = BeforeNow("birth_date", &future, "m").Check(context.Background())
	assert.False(t, ok)

	ok, _ = BeforeNow("birth_date", nil, "m").Check(context.Background())
	assert.True(t, ok)
}

func TestErrorsAddAppends(t *testing.T) {
	e := Errors{}
	e.Add("email", "first")
	e.Add("email", "second")
	assert.Equal(t, []string{"first", "second"}, e["email"])
}
