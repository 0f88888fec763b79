package guest

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrepareImportThreeBuckets(t *testing.T) {
	existing := map[string]bool{"fulano da silva": true}

	result := PrepareImport([]string{
		"  Ana Souza  ",
		"A",
		"Ana Souza",
		"ana souza",
		"Fulano da Silva",
		"",
		"   ",
		"Beltrano Costa",
	}, existing)

	assert.Equal(t, []string{"Ana Souza", "Beltrano Costa"}, result.Accepted)
	assert.Equal(t, []string{"Ana Souza", "ana souza", "Fulano da Silva"}, result.Duplicates)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "A", result.Errors[0].Name)
}

func TestPrepareImportRejectsTooLongNames(t *testing.T) {
	long := strings.Repeat("á", MaxNameLength+1)

	result := PrepareImport([]string{long}, nil)

	assert.Empty(t, result.Accepted)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0].Error, "longo")
}

func TestPrepareImportCountsRunesNotBytes(t *testing.T) {
	// 100 accented runes is over 100 bytes but still within the limit.
	name := strings.Repeat("é", MaxNameLength)

	result := PrepareImport([]string{name}, nil)

	assert.Equal(t, []string{name}, result.Accepted)
	assert.Empty(t, result.Errors)
}

func TestSplitNames(t *testing.T) {
	names := SplitNames("Ana\r\nBeto\nCarla")
	assert.Equal(t, []string{"Ana", "Beto", "Carla"}, names)
}

func TestGenerateConfirmationCodeShape(t *testing.T) {
	code, err := GenerateConfirmationCode(func(string) (bool, error) {
		return false, nil
	})

	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)
	assert.GreaterOrEqual(t, code, "100000")
	assert.LessOrEqual(t, code, "999999")
}

func TestGenerateConfirmationCodeRetriesOnCollision(t *testing.T) {
	calls := 0
	code, err := GenerateConfirmationCode(func(string) (bool, error) {
		calls++
		return calls < 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Regexp(t, `^\d{6}$`, code)
}

func TestGenerateConfirmationCodeGivesUpAfterTenAttempts(t *testing.T) {
	calls := 0
	_, err := GenerateConfirmationCode(func(string) (bool, error) {
		calls++
		return true, nil
	})

	assert.ErrorIs(t, err, ErrCodeExhausted)
	assert.Equal(t, 10, calls)
}

func TestGenerateConfirmationCodePropagatesLookupErrors(t *testing.T) {
	boom := errors.New("db down")
	_, err := GenerateConfirmationCode(func(string) (bool, error) {
		return false, boom
	})

	assert.ErrorIs(t, err, boom)
}

func TestParseConfirmationInput(t *testing.T) {
	token := "6f9619ff-8b86-4d01-b42d-00cf4fc964ff"

	tests := []struct {
		name  string
		input string
		kind  LookupKind
		value string
	}{
		{"bare code", "123456", LookupCode, "123456"},
		{"code with spaces", "  123456  ", LookupCode, "123456"},
		{"bare token", token, LookupToken, token},
		{"url with token query", "https://festa.example.com/confirmar?token=" + token, LookupToken, token},
		{"url with code query", "https://festa.example.com/confirmar?code=654321", LookupCode, "654321"},
		{"url with path token", "https://festa.example.com/confirmacao/" + token, LookupToken, token},
		{"www url without scheme", "www.festa.example.com/confirmacao/" + token, LookupToken, token},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, value, err := ParseConfirmationInput(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.value, value)
		})
	}
}

func TestParseConfirmationInputRejectsGarbage(t *testing.T) {
	for _, input := range []string{
		"",
		"   ",
		"12AB56",
		"12345",
		"1234567",
		"not-a-token",
		"https://festa.example.com/sobre",
		"https://festa.example.com/confirmar?code=12AB56",
		"https://festa.example.com/confirmacao/lixo-que-nao-e-token",
		"https://festa.example.com/confirmar?token=lixo",
		"www.festa.example.com/confirmacao/123",
	} {
		_, _, err := ParseConfirmationInput(input)
		assert.ErrorIs(t, err, ErrUnrecognizedInput, "input %q", input)
	}
}
