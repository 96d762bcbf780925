package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"user-records-api/internal/domain/record"
	dto "user-records-api/internal/interface/api/rest/dto/record"
)

func TestParseID(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    record.ID
		wantErr bool
	}{
		{"plain number", "42", 42, false},
		{"padded", " 7 ", 7, false},
		{"non-numeric", "abc", 0, true},
		{"empty", "", 0, true},
		{"negative", "-1", 0, true},
		{"zero", "0", 0, true},
		{"float", "1.5", 0, true},
		{"uuid", "7f8d2c9e-0000-0000-0000-000000000000", 0, true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseID(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, "id must be a positive integer", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateCreate(t *testing.T) {
	valid := dto.Form{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}

	t.Run("valid form passes", func(t *testing.T) {
		assert.Nil(t, ValidateCreate(valid))
	})

	t.Run("every missing required field is named", func(t *testing.T) {
		errs := ValidateCreate(dto.Form{Phone: "+33612345678"})
		require.Len(t, errs, 3)
		assert.Contains(t, errs, "firstName")
		assert.Contains(t, errs, "lastName")
		assert.Contains(t, errs, "email")
	})

	t.Run("optional fields may be absent", func(t *testing.T) {
		f := valid
		f.Phone = ""
		f.Address = ""
		assert.Nil(t, ValidateCreate(f))
	})

	t.Run("malformed email rejected", func(t *testing.T) {
		f := valid
		f.Email = "not-an-email"
		errs := ValidateCreate(f)
		require.Len(t, errs, 1)
		assert.Equal(t, "invalid email format", errs["email"])
	})
}

func TestValidateUpdate(t *testing.T) {
	t.Run("empty form is a legal no-op", func(t *testing.T) {
		assert.Nil(t, ValidateUpdate(dto.Form{}))
	})

	t.Run("present email must be well-formed", func(t *testing.T) {
		errs := ValidateUpdate(dto.Form{Email: "nope"})
		require.Len(t, errs, 1)
		assert.Equal(t, "invalid email format", errs["email"])
	})

	t.Run("present valid email passes", func(t *testing.T) {
		assert.Nil(t, ValidateUpdate(dto.Form{Email: "new@example.com"}))
	})
}
