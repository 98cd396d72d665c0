package gedcom_test

import (
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/famsnap/internal/adapters/gedcom"
	"go.trai.ch/famsnap/internal/core/domain"
	"go.trai.ch/zerr"
)

func parseFixture(t *testing.T) *domain.Graph {
	t.Helper()

	f, err := os.Open("testdata/doe.ged")
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck // Test fixture

	g, err := gedcom.Parse(f)
	require.NoError(t, err)
	return g
}

func TestParse_Fixture(t *testing.T) {
	g := parseFixture(t)

	assert.Equal(t, 6, g.IndividualCount())
	assert.Equal(t, 3, g.FamilyCount())

	john, ok := g.Individual("I001")
	require.True(t, ok)
	assert.Equal(t, "John", john.FirstName)
	assert.Equal(t, "Doe", john.LastName)
	assert.Equal(t, domain.SexMale, john.Sex)
	assert.Equal(t, "1850", john.Birth)
	assert.Equal(t, "1920", john.Death)
	assert.Equal(t, []string{"F01"}, john.SpouseFamilies)
	assert.Equal(t, "F00", john.ParentFamily)

	mary, ok := g.Individual("I005")
	require.True(t, ok)
	assert.Equal(t, "1877", mary.Birth)
	assert.Empty(t, mary.Death)

	fam, ok := g.Family("F01")
	require.True(t, ok)
	assert.Equal(t, "I001", fam.Husband)
	assert.Equal(t, "I002", fam.Wife)
	assert.Equal(t, []string{"I003", "I005"}, fam.Children)
}

func TestParse_IndividualsKeepSourceOrder(t *testing.T) {
	g := parseFixture(t)

	var ids []string
	for ind := range g.Individuals() {
		ids = append(ids, ind.ID)
	}
	assert.Equal(t, []string{"I001", "I002", "I003", "I004", "I005", "I006"}, ids)
}

func TestParse_Tolerance(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "crlf line endings",
			input: "0 HEAD\r\n0 @I1@ INDI\r\n1 NAME Ann /Lee/\r\n0 TRLR\r\n",
		},
		{
			name:  "cr line endings",
			input: "0 HEAD\r0 @I1@ INDI\r1 NAME Ann /Lee/\r0 TRLR",
		},
		{
			name:  "byte order mark",
			input: "\ufeff0 HEAD\n0 @I1@ INDI\n1 NAME Ann /Lee/\n0 TRLR\n",
		},
		{
			name:  "indentation and blank lines",
			input: "0 HEAD\n\n0 @I1@ INDI\n  1 NAME Ann /Lee/  \n\n0 TRLR\n",
		},
		{
			name:  "lower case tags",
			input: "0 head\n0 @I1@ indi\n1 name Ann /Lee/\n0 trlr\n",
		},
		{
			name:  "extension records",
			input: "0 HEAD\n0 @X1@ _PLAC\n1 NAME Somewhere\n0 @I1@ INDI\n1 NAME Ann /Lee/\n1 _UID 42\n0 TRLR\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := gedcom.Parse(strings.NewReader(tt.input))
			require.NoError(t, err)

			ind, ok := g.Individual("I1")
			require.True(t, ok)
			assert.Equal(t, "Ann", ind.FirstName)
			assert.Equal(t, "Lee", ind.LastName)
		})
	}
}

func TestParse_Names(t *testing.T) {
	input := `0 HEAD
0 @I1@ INDI
1 NAME
2 GIVN Peter
2 SURN Parker
0 @I2@ INDI
1 NAME Cher
1 NAME Cherilyn /Sarkisian/
0 @I3@ INDI
1 SEX m
1 SEX F
0 TRLR
`
	g, err := gedcom.Parse(strings.NewReader(input))
	require.NoError(t, err)

	peter, _ := g.Individual("I1")
	assert.Equal(t, "Peter", peter.FirstName)
	assert.Equal(t, "Parker", peter.LastName)

	cher, _ := g.Individual("I2")
	assert.Equal(t, "Cher", cher.FirstName)
	assert.Empty(t, cher.LastName)

	anon, _ := g.Individual("I3")
	assert.Equal(t, domain.SexMale, anon.Sex)
	assert.Empty(t, anon.FirstName)
}

func TestParse_References(t *testing.T) {
	input := `0 HEAD
0 @I1@ INDI
1 FAMC @F1@
1 FAMC @F2@
1 FAMS @F3@
1 FAMS @F9@
1 FAMS not-a-pointer
0 @I2@ INDI
0 @I3@ INDI
0 @F1@ FAM
1 HUSB @I2@
1 HUSB @I3@
1 WIFE @I404@
1 CHIL @I1@
1 CHIL @I3@
0 @F2@ FAM
0 @F3@ FAM
0 TRLR
`
	g, err := gedcom.Parse(strings.NewReader(input))
	require.NoError(t, err)

	ind, _ := g.Individual("I1")
	assert.Equal(t, "F1", ind.ParentFamily)
	assert.Equal(t, []string{"F3", "F9"}, ind.SpouseFamilies)

	fam, _ := g.Family("F1")
	assert.Equal(t, "I2", fam.Husband)
	assert.Equal(t, "I404", fam.Wife)
	assert.Equal(t, []string{"I1", "I3"}, fam.Children)

	_, ok := g.Individual(fam.Wife)
	assert.False(t, ok, "dangling reference reads as absent")

	father, mother := g.ParentsOf(&ind)
	require.NotNil(t, father)
	assert.Equal(t, "I2", father.ID)
	assert.Nil(t, mother)
}

func TestParse_StructuralErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		line  int
	}{
		{
			name:  "empty input",
			input: "",
			line:  0,
		},
		{
			name:  "missing trailer",
			input: "0 HEAD\n0 @I1@ INDI\n1 NAME Ann /Lee/\n",
			line:  3,
		},
		{
			name:  "content after trailer",
			input: "0 HEAD\n0 TRLR\n0 @I1@ INDI\n",
			line:  3,
		},
		{
			name:  "non numeric level",
			input: "0 HEAD\nX @I1@ INDI\n0 TRLR\n",
			line:  2,
		},
		{
			name:  "missing tag",
			input: "0 HEAD\n0 @I1@\n0 TRLR\n",
			line:  2,
		},
		{
			name:  "malformed xref",
			input: "0 HEAD\n0 @I1 INDI\n0 TRLR\n",
			line:  2,
		},
		{
			name:  "first line not at level zero",
			input: "1 HEAD\n0 TRLR\n",
			line:  1,
		},
		{
			name:  "level jump",
			input: "0 HEAD\n0 @I1@ INDI\n2 DATE 1900\n0 TRLR\n",
			line:  3,
		},
		{
			name:  "unexpected record type",
			input: "0 HEAD\n0 @P1@ PLAC\n0 TRLR\n",
			line:  2,
		},
		{
			name:  "individual without identifier",
			input: "0 HEAD\n0 INDI\n0 TRLR\n",
			line:  2,
		},
		{
			name:  "duplicate identifier",
			input: "0 HEAD\n0 @I1@ INDI\n0 @I1@ INDI\n0 TRLR\n",
			line:  3,
		},
		{
			name:  "identifier shared across record types",
			input: "0 HEAD\n0 @X1@ INDI\n0 @X1@ FAM\n0 TRLR\n",
			line:  3,
		},
		{
			name:  "spousal family pointing at an individual",
			input: "0 HEAD\n0 @I1@ INDI\n1 FAMS @I2@\n0 @I2@ INDI\n0 TRLR\n",
			line:  3,
		},
		{
			name:  "child pointing at a family",
			input: "0 HEAD\n0 @F1@ FAM\n1 CHIL @F2@\n0 @F2@ FAM\n0 TRLR\n",
			line:  3,
		},
		{
			name:  "husband pointing at a note",
			input: "0 HEAD\n0 @N1@ NOTE text\n0 @F1@ FAM\n1 HUSB @N1@\n0 TRLR\n",
			line:  4,
		},
		{
			name:  "line exceeds maximum length",
			input: "0 HEAD\n0 @N1@ NOTE " + strings.Repeat("x", 2<<20) + "\n0 TRLR\n",
			line:  2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := gedcom.Parse(strings.NewReader(tt.input))
			require.Error(t, err)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, domain.ErrParse)

			var zErr *zerr.Error
			require.ErrorAs(t, err, &zErr)
			assert.Equal(t, tt.line, zErr.Metadata()["line"])
		})
	}
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		value   string
		given   string
		surname string
	}{
		{value: "John /Doe/", given: "John", surname: "Doe"},
		{value: "John Paul /Doe/ Jr.", given: "John Paul", surname: "Doe"},
		{value: "/Doe/", given: "", surname: "Doe"},
		{value: "John /Doe", given: "John", surname: "Doe"},
		{value: "Madonna", given: "Madonna", surname: ""},
		{value: "  Spaced  ", given: "Spaced", surname: ""},
		{value: "", given: "", surname: ""},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			given, surname := gedcom.SplitName(tt.value)
			assert.Equal(t, tt.given, given)
			assert.Equal(t, tt.surname, surname)
		})
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		date string
		want string
	}{
		{date: "1850", want: "1850"},
		{date: "abt. 1850", want: "1850"},
		{date: "12 MAR 1875", want: "1875"},
		{date: "BET 1877 AND 1879", want: "1877"},
		{date: "FROM 1900 TO 1910", want: "1900"},
		{date: "1/2/1903", want: "1903"},
		{date: "12345 then 1901", want: "1901"},
		{date: "(1880)", want: "1880"},
		{date: "MAR 85", want: ""},
		{date: "unknown", want: ""},
		{date: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			assert.Equal(t, tt.want, gedcom.ExtractYear(tt.date))
		})
	}
}
