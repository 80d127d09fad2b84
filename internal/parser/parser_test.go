package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshsymonds/orgaudit/internal/models"
)

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"123", "Joe", "Doe", "60000", ""}, Split("123,Joe,Doe,60000,", ','))
	assert.Equal(t, []string{"1", "", "", "", ""}, Split("1,,,,", ','))
	assert.Equal(t, []string{"a", "b"}, Split("a;b", ';'))
}

func TestParseRecord(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		delim    rune
		want     models.Employee
		wantKind models.ErrorKind
		wantErr  bool
	}{
		{
			name:  "root record with trailing empty manager",
			line:  "123,Joe,Doe,60000,",
			delim: ',',
			want:  models.Employee{ID: "123", FirstName: "Joe", LastName: "Doe", Salary: 60000},
		},
		{
			name:  "report record",
			line:  "124,Martin,Chekov,45000,123",
			delim: ',',
			want:  models.Employee{ID: "124", FirstName: "Martin", LastName: "Chekov", Salary: 45000, ManagerID: "123"},
		},
		{
			name:  "fields are trimmed",
			line:  "  125 , Bob ,  Ronstad , 47000.50 ,  123  ",
			delim: ',',
			want:  models.Employee{ID: "125", FirstName: "Bob", LastName: "Ronstad", Salary: 47000.50, ManagerID: "123"},
		},
		{
			name:  "whitespace-only manager is root",
			line:  "300,Alice,Hasacat,50000,   ",
			delim: ',',
			want:  models.Employee{ID: "300", FirstName: "Alice", LastName: "Hasacat", Salary: 50000},
		},
		{
			name:  "alternate delimiter",
			line:  "7;Ann;Lee;0;1",
			delim: ';',
			want:  models.Employee{ID: "7", FirstName: "Ann", LastName: "Lee", Salary: 0, ManagerID: "1"},
		},
		{
			name:     "too few fields",
			line:     "123,Joe,Doe,60000",
			delim:    ',',
			wantErr:  true,
			wantKind: models.ErrMalformedRecord,
		},
		{
			name:     "too many fields",
			line:     "123,Joe,Doe,60000,,extra",
			delim:    ',',
			wantErr:  true,
			wantKind: models.ErrMalformedRecord,
		},
		{
			name:     "empty id",
			line:     " ,Joe,Doe,60000,",
			delim:    ',',
			wantErr:  true,
			wantKind: models.ErrMalformedRecord,
		},
		{
			name:     "non-numeric salary",
			line:     "123,Joe,Doe,lots,",
			delim:    ',',
			wantErr:  true,
			wantKind: models.ErrInvalidSalary,
		},
		{
			name:     "empty salary",
			line:     "123,Joe,Doe,,",
			delim:    ',',
			wantErr:  true,
			wantKind: models.ErrInvalidSalary,
		},
		{
			name:     "negative salary",
			line:     "123,Joe,Doe,-1,",
			delim:    ',',
			wantErr:  true,
			wantKind: models.ErrInvalidSalary,
		},
		{
			name:     "NaN salary",
			line:     "123,Joe,Doe,NaN,",
			delim:    ',',
			wantErr:  true,
			wantKind: models.ErrInvalidSalary,
		},
		{
			name:     "infinite salary",
			line:     "123,Joe,Doe,+Inf,",
			delim:    ',',
			wantErr:  true,
			wantKind: models.ErrInvalidSalary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRecord(tt.line, tt.delim)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, models.IsKind(err, tt.wantKind), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRecordErrorContext(t *testing.T) {
	t.Run("invalid salary names employee and raw value", func(t *testing.T) {
		_, err := ParseRecord("42,Ann,Lee, 12k ,1", ',')
		require.Error(t, err)

		var modelErr *models.Error
		require.ErrorAs(t, err, &modelErr)
		assert.Equal(t, "42", modelErr.EmployeeID)
		assert.Equal(t, "12k", modelErr.Value)
		assert.Contains(t, err.Error(), `invalid salary for employee 42: "12k"`)
	})

	t.Run("malformed record carries the raw line", func(t *testing.T) {
		_, err := ParseRecord("1,2,3", ',')
		require.Error(t, err)

		var modelErr *models.Error
		require.ErrorAs(t, err, &modelErr)
		assert.Equal(t, "1,2,3", modelErr.Value)
		assert.Contains(t, err.Error(), "expected 5 fields, got 3")
	})
}
