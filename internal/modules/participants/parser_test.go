package participants

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consumerlab/markettrends/internal/domain"
)

func TestParseRecord_Variants(t *testing.T) {
	student, err := ParseRecord(map[string]any{
		"type": "student", "name": "Danieshia", "age": 20,
		"email": "dm@example.edu", "school": "University of Maryland",
	})
	require.NoError(t, err)
	require.IsType(t, &Student{}, student)
	assert.Equal(t, "University of Maryland", student.(*Student).School())
	assert.Equal(t, TypeStudent, student.Type())

	adult, err := ParseRecord(map[string]any{
		"type": "adult", "name": "Ash", "age": 35,
		"email": "ash@example.com", "occupation": "Teacher",
	})
	require.NoError(t, err)
	require.IsType(t, &Adult{}, adult)
	assert.Equal(t, "Teacher", adult.(*Adult).Occupation())

	senior, err := ParseRecord(map[string]any{
		"type": "senior", "name": "Katie", "age": 70,
		"email": "katie@example.com", "retirement_status": true,
	})
	require.NoError(t, err)
	require.IsType(t, &Senior{}, senior)
	assert.True(t, senior.(*Senior).Retired())
}

func TestParseRecord_TypeCaseInsensitive(t *testing.T) {
	p, err := ParseRecord(map[string]any{
		"type": "  STUDENT ", "name": "Dani", "age": 20, "email": "d@example.edu",
	})
	require.NoError(t, err)
	assert.Equal(t, TypeStudent, p.Type())
}

func TestParseRecord_MissingRequiredKeys(t *testing.T) {
	for _, missing := range []string{"type", "name", "age", "email"} {
		t.Run(missing, func(t *testing.T) {
			rec := map[string]any{
				"type": "adult", "name": "Ash", "age": 35, "email": "ash@example.com",
			}
			delete(rec, missing)

			_, err := ParseRecord(rec)
			require.Error(t, err)

			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, missing, vErr.Field)
		})
	}
}

func TestParseRecord_UnknownType(t *testing.T) {
	_, err := ParseRecord(map[string]any{
		"type": "alien", "name": "Zed", "age": 900, "email": "zed@example.com",
	})
	require.Error(t, err)

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "type", vErr.Field)
}

func TestParseRecord_AgeCoercion(t *testing.T) {
	tests := []struct {
		name    string
		age     any
		want    int
		wantErr bool
	}{
		{"int", 25, 25, false},
		{"json float", float64(25), 25, false},
		{"numeric string", "25", 25, false},
		{"padded numeric string", " 25 ", 25, false},
		{"fractional float", 25.5, 0, true},
		{"non-numeric string", "twenty-five", 0, true},
		{"nil", nil, 0, true},
		{"bool", true, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := ParseRecord(map[string]any{
				"type": "adult", "name": "Ash", "age": tt.age, "email": "ash@example.com",
			})
			if tt.wantErr {
				require.Error(t, err)
				var cErr *domain.CoercionError
				assert.ErrorAs(t, err, &cErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, p.Age())
		})
	}
}

func TestRetirementStatus_AllowList(t *testing.T) {
	tests := []struct {
		value any
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"Yes", true},
		{"True ", false}, // trailing space is not on the allow-list
		{"y", false},
		{"no", false},
		{"", false},
		{true, true},
		{false, false},
		{nil, false},
		{float64(1), false},
	}

	for _, tt := range tests {
		p, err := ParseRecord(map[string]any{
			"type": "senior", "name": "Katie", "age": 70,
			"email": "katie@example.com", "retirement_status": tt.value,
		})
		require.NoError(t, err)
		assert.Equal(t, tt.want, p.(*Senior).Retired(), "value %#v", tt.value)
	}
}

func TestParticipantRecord_RoundTrip(t *testing.T) {
	original := map[string]any{
		"type": "senior", "name": "Katie", "age": 70,
		"email": "katie@example.com", "retirement_status": true,
	}

	p, err := ParseRecord(original)
	require.NoError(t, err)

	rebuilt, err := ParseRecord(p.Record())
	require.NoError(t, err)
	assert.Equal(t, p, rebuilt)
}
