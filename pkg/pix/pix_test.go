package pix

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateKeyCPF(t *testing.T) {
	assert.NoError(t, ValidateKey(KeyCPF, "11144477735"))
	assert.NoError(t, ValidateKey(KeyCPF, "111.444.777-35"))
	assert.NoError(t, ValidateKey(KeyCPF, "529.982.247-25"))

	assert.Error(t, ValidateKey(KeyCPF, "11144477734"), "wrong check digit")
	assert.Error(t, ValidateKey(KeyCPF, "11111111111"), "repeated digits")
	assert.Error(t, ValidateKey(KeyCPF, "1114447773"), "too short")
	assert.Error(t, ValidateKey(KeyCPF, ""))
}

func TestValidateKeyCNPJ(t *testing.T) {
	assert.NoError(t, ValidateKey(KeyCNPJ, "11222333000181"))
	assert.NoError(t, ValidateKey(KeyCNPJ, "11.222.333/0001-81"))

	assert.Error(t, ValidateKey(KeyCNPJ, "11222333000182"), "wrong check digit")
	assert.Error(t, ValidateKey(KeyCNPJ, "00000000000000"), "repeated digits")
	assert.Error(t, ValidateKey(KeyCNPJ, "1122233300018"), "too short")
}

func TestValidateKeyEmail(t *testing.T) {
	assert.NoError(t, ValidateKey(KeyEmail, "noivos@example.com"))

	assert.Error(t, ValidateKey(KeyEmail, "sem-arroba.example.com"))
	assert.Error(t, ValidateKey(KeyEmail, "dois@arro@bas.com"))
}

func TestValidateKeyPhone(t *testing.T) {
	assert.NoError(t, ValidateKey(KeyPhone, "+5511999999999"))

	assert.Error(t, ValidateKey(KeyPhone, "5511999999999"), "missing +")
	assert.Error(t, ValidateKey(KeyPhone, "+05511999999999"), "leading zero")
	assert.Error(t, ValidateKey(KeyPhone, "+55 11 99999-9999"), "spaces not allowed")
}

func TestValidateKeyRandom(t *testing.T) {
	assert.NoError(t, ValidateKey(KeyRandom, "6f9619ff-8b86-4d01-b42d-00cf4fc964ff"))
	assert.Error(t, ValidateKey(KeyRandom, "not-an-evp"))
}

func TestValidateKeyUnknownType(t *testing.T) {
	assert.Error(t, ValidateKey("BITCOIN", "whatever"))
}

func TestIsValidType(t *testing.T) {
	for _, kt := range KeyTypes {
		assert.True(t, IsValidType(string(kt)))
	}
	assert.False(t, IsValidType("cpf"), "types are uppercase")
	assert.False(t, IsValidType(""))
}

func TestBRCodeStructure(t *testing.T) {
	code, err := BRCode(Payload{
		Key:          "noivos@example.com",
		MerchantName: "João e Maria",
		MerchantCity: "São Paulo",
		Amount:       150.5,
		TxID:         "PRESENTE42",
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(code, "000201"), "payload format indicator")
	assert.Contains(t, code, "br.gov.bcb.pix")
	assert.Contains(t, code, "noivos@example.com")
	assert.Contains(t, code, "5303986", "currency BRL")
	assert.Contains(t, code, "54"+"06"+"150.50", "amount field")
	assert.Contains(t, code, "5802BR")
	assert.Contains(t, code, "Joao e Maria", "diacritics folded")
	assert.Contains(t, code, "Sao Paulo")
	assert.Contains(t, code, "PRESENTE42")
	assert.True(t, CheckCRC(code))
}

func TestBRCodeOmitsZeroAmount(t *testing.T) {
	code, err := BRCode(Payload{
		Key:          "noivos@example.com",
		MerchantName: "Casal",
		MerchantCity: "SAO PAULO",
	})
	require.NoError(t, err)

	assert.NotContains(t, code, "5406")
	assert.Contains(t, code, "6207"+"0503***", "default txid")
	assert.True(t, CheckCRC(code))
}

func TestBRCodeTruncatesMerchantFields(t *testing.T) {
	code, err := BRCode(Payload{
		Key:          "noivos@example.com",
		MerchantName: strings.Repeat("A", 40),
		MerchantCity: strings.Repeat("B", 40),
	})
	require.NoError(t, err)

	assert.Contains(t, code, "59"+"25"+strings.Repeat("A", 25))
	assert.Contains(t, code, "60"+"15"+strings.Repeat("B", 15))
}

func TestBRCodeRejectsBadPayloads(t *testing.T) {
	_, err := BRCode(Payload{MerchantName: "Casal", MerchantCity: "SP"})
	assert.Error(t, err, "missing key")

	_, err = BRCode(Payload{Key: "noivos@example.com", MerchantCity: "SP"})
	assert.Error(t, err, "missing name")

	_, err = BRCode(Payload{
		Key:          "noivos@example.com",
		MerchantName: "Casal",
		MerchantCity: "SP",
		TxID:         strings.Repeat("X", 26),
	})
	assert.Error(t, err, "txid too long")
}

func TestCheckCRC(t *testing.T) {
	code, err := BRCode(Payload{
		Key:          "6f9619ff-8b86-4d01-b42d-00cf4fc964ff",
		MerchantName: "Casal",
		MerchantCity: "SAO PAULO",
	})
	require.NoError(t, err)

	assert.True(t, CheckCRC(code))
	assert.False(t, CheckCRC(code[:len(code)-1]+"0"), "corrupted checksum")
	assert.False(t, CheckCRC("too short"))
}

func TestCRC16KnownVector(t *testing.T) {
	// CRC-16/CCITT-FALSE of "123456789" is 0x29B1.
	assert.Equal(t, uint16(0x29B1), crc16("123456789"))
}
