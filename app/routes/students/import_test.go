package students

import (
	"encoding/csv"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"vidyalaya/app/database"
)

func TestMapColumnsRequiresName(t *testing.T) {
	cols, err := mapColumns([]string{"Name", " date_of_birth ", "phone"})
	assert.NoError(t, err)
	assert.Equal(t, 0, cols["name"])
	assert.Equal(t, 1, cols["date_of_birth"])

	_, err = mapColumns([]string{"father_name", "phone"})
	assert.Error(t, err)
}

func TestRowToAdmissionValidation(t *testing.T) {
	cols := map[string]int{"name": 0, "date_of_birth": 1, "transport_fee": 2}

	in, err := rowToAdmission([]string{"Asha Verma", "2014-06-01", "300"}, cols, "2025-26", "class-1")
	assert.NoError(t, err)
	assert.Equal(t, "Asha Verma", in.Name)
	assert.Equal(t, int64(300), in.TransportFee)

	_, err = rowToAdmission([]string{"", "2014-06-01", "300"}, cols, "2025-26", "class-1")
	assert.Error(t, err)

	_, err = rowToAdmission([]string{"Asha Verma", "01/06/2014", "300"}, cols, "2025-26", "class-1")
	assert.Error(t, err)

	_, err = rowToAdmission([]string{"Asha Verma", "2014-06-01", "-5"}, cols, "2025-26", "class-1")
	assert.Error(t, err)
}

func TestImportRowsContinuesPastMalformedRows(t *testing.T) {
	// Row 3 has the wrong field count and row 5 has an empty name; both
	// must be reported without cutting off the rows after them.
	data := strings.Join([]string{
		"name,date_of_birth,transport_fee",
		"Asha Verma,2014-06-01,300",
		"Bad Row,2014-06-02",
		"Kiran Joshi,2013-11-20,0",
		",2012-01-15,200",
		"Meena Das,2014-02-28,150",
	}, "\n")

	reader := csv.NewReader(strings.NewReader(data))
	reader.TrimLeadingSpace = true
	header, err := reader.Read()
	assert.NoError(t, err)
	cols, err := mapColumns(header)
	assert.NoError(t, err)

	var names []string
	admit := func(in *database.AdmissionInput) error {
		names = append(names, in.Name)
		return nil
	}

	admitted, failures := importRows(reader, cols, "2025-26", "class-1", admit)
	assert.Equal(t, 3, admitted)
	assert.Equal(t, []string{"Asha Verma", "Kiran Joshi", "Meena Das"}, names)
	assert.Len(t, failures, 2)
	assert.Equal(t, 3, failures[0].Row)
	assert.Contains(t, failures[0].Error, "malformed row")
	assert.Equal(t, 5, failures[1].Row)
}

func TestImportRowsReportsFailedAdmissions(t *testing.T) {
	data := strings.Join([]string{
		"name",
		"Asha Verma",
		"Kiran Joshi",
	}, "\n")

	reader := csv.NewReader(strings.NewReader(data))
	header, err := reader.Read()
	assert.NoError(t, err)
	cols, err := mapColumns(header)
	assert.NoError(t, err)

	admit := func(in *database.AdmissionInput) error {
		if in.Name == "Asha Verma" {
			return errors.New("boom")
		}
		return nil
	}

	admitted, failures := importRows(reader, cols, "2025-26", "class-1", admit)
	assert.Equal(t, 1, admitted)
	assert.Len(t, failures, 1)
	assert.Equal(t, 2, failures[0].Row)
}
